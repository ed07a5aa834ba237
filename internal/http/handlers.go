/* Copyright (c) 2025 Hamed Shams <https://hamedshams.com>
 * SPDX-License-Identifier: BSD-3-Clause */
package http

import (
    "net/http"

    "github.com/gin-gonic/gin"
    "github.com/rs/zerolog"

    "github.com/HamedShams/sprint-lens/internal/apperrors"
    "github.com/HamedShams/sprint-lens/internal/config"
    "github.com/HamedShams/sprint-lens/internal/domain"
)

type service interface {
    Summary() map[string]any
    Sprints() []string
    CurrentSprint() string
    SprintMetrics(current, previous string) domain.SprintComparison
    Velocity() domain.VelocityStats
    Epics() []domain.EpicStats
    Workload() []domain.AssigneeLoad
    Capacity() domain.CapacityStats
    WeeklyCreated() []domain.WeekCount
    StatusDistribution() []domain.NameCount
    PriorityDistribution() []domain.NameCount
    TypeDistribution() []domain.NameCount
    Burndown() domain.BurndownSeries
    Reload() domain.LoadStatus
    LastLoad() domain.LoadStatus
}

type Handlers struct {
    cfg config.Config
    log zerolog.Logger
    svc service
}

func NewHandlers(cfg config.Config, log zerolog.Logger, svc service) *Handlers {
    return &Handlers{cfg: cfg, log: log, svc: svc}
}

func (h *Handlers) Healthz(c *gin.Context) {
    c.JSON(http.StatusOK, gin.H{"ok": true})
}

func (h *Handlers) Summary(c *gin.Context) {
    c.JSON(http.StatusOK, h.svc.Summary())
}

func (h *Handlers) Sprints(c *gin.Context) {
    sprints := h.svc.Sprints()
    if sprints == nil { sprints = []string{} }
    c.JSON(http.StatusOK, gin.H{"sprints": sprints})
}

func (h *Handlers) CurrentSprint(c *gin.Context) {
    c.JSON(http.StatusOK, gin.H{"current_sprint": h.svc.CurrentSprint()})
}

// SprintMetrics answers ?current=&previous=; both optional, defaulting to the
// latest sprint and the one before it.
func (h *Handlers) SprintMetrics(c *gin.Context) {
    cmp := h.svc.SprintMetrics(c.Query("current"), c.Query("previous"))
    c.JSON(http.StatusOK, cmp)
}

func (h *Handlers) Velocity(c *gin.Context) {
    c.JSON(http.StatusOK, h.svc.Velocity())
}

func (h *Handlers) Epics(c *gin.Context) {
    epics := h.svc.Epics()
    if epics == nil { epics = []domain.EpicStats{} }
    c.JSON(http.StatusOK, gin.H{"epics": epics})
}

func (h *Handlers) Workload(c *gin.Context) {
    loads := h.svc.Workload()
    if loads == nil { loads = []domain.AssigneeLoad{} }
    c.JSON(http.StatusOK, gin.H{"workload": loads, "capacity": h.svc.Capacity()})
}

func (h *Handlers) WeeklyCreated(c *gin.Context) {
    weeks := h.svc.WeeklyCreated()
    if weeks == nil { weeks = []domain.WeekCount{} }
    c.JSON(http.StatusOK, gin.H{"weeks": weeks})
}

func (h *Handlers) StatusDistribution(c *gin.Context) {
    h.distribution(c, h.svc.StatusDistribution())
}

func (h *Handlers) PriorityDistribution(c *gin.Context) {
    h.distribution(c, h.svc.PriorityDistribution())
}

func (h *Handlers) TypeDistribution(c *gin.Context) {
    h.distribution(c, h.svc.TypeDistribution())
}

func (h *Handlers) distribution(c *gin.Context, counts []domain.NameCount) {
    if counts == nil { counts = []domain.NameCount{} }
    c.JSON(http.StatusOK, gin.H{"counts": counts})
}

// Burndown returns the two series plus the line colors so any frontend can
// render them consistently.
func (h *Handlers) Burndown(c *gin.Context) {
    c.JSON(http.StatusOK, gin.H{
        "series":          h.svc.Burndown(),
        "ideal_color":     h.cfg.Styles.CompletedColor,
        "remaining_color": h.cfg.Styles.RemainingColor,
    })
}

func (h *Handlers) Reload(c *gin.Context) {
    st := h.svc.Reload()
    code := http.StatusOK
    if !st.OK { code = apperrors.Code(st.ErrorCode).HTTPStatus() }
    c.JSON(code, st)
}

func (h *Handlers) LastLoad(c *gin.Context) {
    c.JSON(http.StatusOK, h.svc.LastLoad())
}
