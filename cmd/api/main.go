/* Copyright (c) 2025 Hamed Shams <https://hamedshams.com>
 * SPDX-License-Identifier: BSD-3-Clause */
package main

import (
    "net/http"
    "os"
    "os/signal"
    "syscall"
    "time"

    "github.com/HamedShams/sprint-lens/internal/config"
    httpapi "github.com/HamedShams/sprint-lens/internal/http"
    "github.com/HamedShams/sprint-lens/internal/jobs"
    "github.com/HamedShams/sprint-lens/internal/logger"
    "github.com/HamedShams/sprint-lens/internal/service"
)

func main() {
    cfg := config.Load()
    log := logger.New(cfg)

    svc := service.New(cfg, log)

    // Warm the snapshot once at startup; a failed load is logged and the
    // service keeps answering with empty results until the file is fixed.
    if st := svc.LastLoad(); st.OK {
        log.Info().Str("file", st.File).Int("rows", st.Rows).Msg("snapshot loaded")
    } else {
        log.Error().Str("file", st.File).Str("reason", st.ErrorMsg).Msg("initial load failed")
    }

    router := httpapi.NewRouter(cfg, log, svc)

    cron := jobs.NewCron(cfg, log, svc)
    cron.Start()
    defer cron.Stop()

    srv := &http.Server{
        Addr:         cfg.HTTPAddr,
        Handler:      router,
        ReadTimeout:  cfg.HTTPTimeout,
        WriteTimeout: cfg.HTTPTimeout,
    }

    errCh := make(chan error, 1)
    go func() { errCh <- srv.ListenAndServe() }()

    sigCh := make(chan os.Signal, 1)
    signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)

    select {
    case <-sigCh:
        log.Info().Msg("shutting down...")
    case err := <-errCh:
        if err != nil { log.Error().Err(err).Msg("http server error") }
    }

    time.Sleep(500 * time.Millisecond)
}
