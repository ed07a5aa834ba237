/* Copyright (c) 2025 Hamed Shams <https://hamedshams.com>
 * SPDX-License-Identifier: BSD-3-Clause */
package http

import (
    "github.com/gin-gonic/gin"
    "github.com/rs/zerolog"

    "github.com/HamedShams/sprint-lens/internal/config"
)

func NewRouter(cfg config.Config, log zerolog.Logger, svc service) *gin.Engine {
    if cfg.AppEnv != "dev" { gin.SetMode(gin.ReleaseMode) }
    r := gin.New()
    r.Use(gin.Recovery())
    r.Use(func(c *gin.Context){
        c.Next()
        log.Info().Str("m", c.Request.Method).Str("p", c.FullPath()).Int("s", c.Writer.Status()).Msg("http")
    })

    h := NewHandlers(cfg, log, svc)

    r.GET("/healthz", h.Healthz)

    api := r.Group("/api")
    api.GET("/summary", h.Summary)
    api.GET("/sprints", h.Sprints)
    api.GET("/sprints/current", h.CurrentSprint)
    api.GET("/metrics/sprint", h.SprintMetrics)
    api.GET("/metrics/velocity", h.Velocity)
    api.GET("/metrics/epics", h.Epics)
    api.GET("/metrics/workload", h.Workload)
    api.GET("/charts/weekly-created", h.WeeklyCreated)
    api.GET("/charts/status-distribution", h.StatusDistribution)
    api.GET("/charts/priority-distribution", h.PriorityDistribution)
    api.GET("/charts/issue-types", h.TypeDistribution)
    api.GET("/charts/burndown", h.Burndown)

    r.POST("/admin/reload", h.Reload)
    r.GET("/admin/last-load", h.LastLoad)

    return r
}
