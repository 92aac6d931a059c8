package scheduler

import (
	"time"

	"sitera-backend/internal/usecase"

	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"
)

// SpecDefault mengikuti interval refresh dashboard: tiap 30 detik status
// dihitung ulang dan peringatan diterbitkan bila perlu.
const SpecDefault = "@every 30s"

// PengawasanScheduler menjalankan pemeriksaan masa berlaku secara berkala.
// Seluruh logika ada di PengawasanUsecase; scheduler hanya pemicu.
type PengawasanScheduler struct {
	engine *cron.Cron
	uc     *usecase.PengawasanUsecase
	log    *logrus.Logger
	spec   string
}

func New(uc *usecase.PengawasanUsecase, log *logrus.Logger, spec string) *PengawasanScheduler {
	if spec == "" {
		spec = SpecDefault
	}
	return &PengawasanScheduler{
		engine: cron.New(cron.WithLocation(time.Local)),
		uc:     uc,
		log:    log,
		spec:   spec,
	}
}

func (s *PengawasanScheduler) Start() error {
	_, err := s.engine.AddFunc(s.spec, func() {
		hasil, err := s.uc.PeriksaMasaBerlaku(time.Now())
		if err != nil {
			s.log.WithError(err).Error("Pemeriksaan masa berlaku gagal")
			return
		}
		s.log.WithFields(logrus.Fields{
			"pemilik_diperiksa": hasil.PemilikDiperiksa,
			"notifikasi_dibuat": hasil.NotifikasiDibuat,
			"email_dikirim":     hasil.EmailDikirim,
		}).Debug("Pemeriksaan masa berlaku selesai")
	})
	if err != nil {
		return err
	}

	s.engine.Start()
	s.log.WithField("spec", s.spec).Info("Scheduler pengawasan tera berjalan")
	return nil
}

func (s *PengawasanScheduler) Stop() {
	s.engine.Stop()
}
