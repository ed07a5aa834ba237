package jobs

import (
    "time"

    "github.com/robfig/cron/v3"
    "github.com/rs/zerolog"

    "github.com/HamedShams/sprint-lens/internal/config"
    "github.com/HamedShams/sprint-lens/internal/domain"
)

type service interface { Reload() domain.LoadStatus }

// Cron refreshes the cached snapshot on a schedule so the served table never
// drifts far behind a CSV that is replaced in place.
type Cron struct {
    cfg config.Config
    log zerolog.Logger
    svc service
    c   *cron.Cron
}

func NewCron(cfg config.Config, log zerolog.Logger, svc service) *Cron {
    loc, _ := time.LoadLocation(cfg.TZ)
    c := cron.New(cron.WithLocation(loc), cron.WithParser(cron.NewParser(cron.Minute|cron.Hour|cron.Dom|cron.Month|cron.Dow)))
    cr := &Cron{cfg: cfg, log: log, svc: svc, c: c}
    _, _ = c.AddFunc(cfg.RefreshCron, cr.refresh)
    return cr
}

func (cr *Cron) Start(){ cr.c.Start() }
func (cr *Cron) Stop(){ cr.c.Stop() }

func (cr *Cron) refresh(){
    st := cr.svc.Reload()
    if !st.OK {
        cr.log.Error().Str("file", st.File).Str("reason", st.ErrorMsg).Msg("cron: refresh failed")
        return
    }
    cr.log.Info().Int("rows", st.Rows).Int("dropped", st.Dropped).Msg("cron: snapshot refreshed")
}
