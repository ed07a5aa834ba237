/* Copyright (c) 2025 Hamed Shams <https://hamedshams.com>
 * SPDX-License-Identifier: BSD-3-Clause */
package config

import (
    "log"
    "os"
    "strconv"
    "time"
)

type Config struct {
    AppEnv   string
    TZ       string
    HTTPAddr string

    // DataFile is the Jira CSV export the service analyzes.
    DataFile string

    // CacheTTL bounds how long a parsed snapshot is served before re-reading the file.
    CacheTTL    time.Duration
    RefreshCron string

    // HTTPTimeout caps the server's per-request read and write time.
    HTTPTimeout time.Duration

    Styles Styles
}

// Styles are the shared presentation constants handed to chart-series and
// formatting code. Immutable: built once in Load and passed by value.
type Styles struct {
    CompletedColor  string
    RemainingColor  string
    AccentColor     string
    DateFormat      string
    PercentDecimals int
}

func defaultStyles() Styles {
    return Styles{
        CompletedColor:  "#36B37E",
        RemainingColor:  "#FF5630",
        AccentColor:     "#00A3BF",
        DateFormat:      "2006-01-02",
        PercentDecimals: 1,
    }
}

func getenv(key, def string) string {
    v := os.Getenv(key)
    if v == "" { return def }
    return v
}

func atoi(key string, def int) int {
    v := os.Getenv(key)
    if v == "" { return def }
    i, err := strconv.Atoi(v)
    if err != nil { return def }
    return i
}

func dur(key string, def time.Duration) time.Duration {
    v := os.Getenv(key)
    if v == "" { return def }
    d, err := time.ParseDuration(v)
    if err != nil { return def }
    return d
}

func Load() Config {
    cfg := Config{
        AppEnv:   getenv("APP_ENV", "dev"),
        TZ:       getenv("APP_TZ", "Europe/London"),
        HTTPAddr: getenv("HTTP_ADDR", ":8080"),

        DataFile: getenv("JIRA_CSV_FILE", "data/jira-export.csv"),

        CacheTTL:    dur("CACHE_TTL", time.Hour),
        RefreshCron: getenv("REFRESH_CRON", "0 * * * *"),

        HTTPTimeout: dur("HTTP_TIMEOUT", 15*time.Second),

        Styles: defaultStyles(),
    }
    if d := atoi("PERCENT_DECIMALS", cfg.Styles.PercentDecimals); d >= 0 && d <= 4 {
        cfg.Styles.PercentDecimals = d
    }

    // set global timezone if available
    if loc, err := time.LoadLocation(cfg.TZ); err == nil {
        time.Local = loc
    } else {
        log.Printf("warning: cannot load TZ %s: %v", cfg.TZ, err)
    }
    return cfg
}
