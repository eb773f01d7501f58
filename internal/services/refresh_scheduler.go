package services

import (
	"log"
	"sync"
	"time"

	"finanzas-api/internal/models"
)

type UserLister interface {
	GetAllUserIDs() ([]string, error)
}

type Refresher interface {
	RefreshAutomatedInvestments(userID string) (*models.RefreshSummary, error)
}

// RefreshScheduler ejecuta el refresh de todos los usuarios periódicamente
type RefreshScheduler struct {
	interval  time.Duration
	users     UserLister
	refresher Refresher
	isRunning bool
	stopChan  chan struct{}
	mutex     sync.Mutex
	lastRun   time.Time
}

func NewRefreshScheduler(interval time.Duration, users UserLister, refresher Refresher) *RefreshScheduler {
	return &RefreshScheduler{
		interval:  interval,
		users:     users,
		refresher: refresher,
		stopChan:  make(chan struct{}),
	}
}

// Start inicia el refresh periódico en segundo plano
func (s *RefreshScheduler) Start() {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	if s.isRunning {
		return
	}

	s.isRunning = true
	s.stopChan = make(chan struct{})

	go func() {
		ticker := time.NewTicker(s.interval)
		defer ticker.Stop()

		// Actualizar inmediatamente al iniciar
		s.refreshAll()

		for {
			select {
			case <-ticker.C:
				s.refreshAll()
			case <-s.stopChan:
				return
			}
		}
	}()

	log.Printf("Refresh periódico iniciado con intervalo de %v", s.interval)
}

// Stop detiene el refresh periódico
func (s *RefreshScheduler) Stop() {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	if !s.isRunning {
		return
	}

	s.isRunning = false
	close(s.stopChan)
	log.Printf("Refresh periódico detenido")
}

func (s *RefreshScheduler) refreshAll() {
	userIDs, err := s.users.GetAllUserIDs()
	if err != nil {
		log.Printf("Error al obtener usuarios para el refresh: %v", err)
		return
	}

	totalUpdated := 0
	for _, userID := range userIDs {
		summary, err := s.refresher.RefreshAutomatedInvestments(userID)
		if err != nil {
			log.Printf("Error al actualizar inversiones del usuario %s: %v", userID, err)
			continue
		}
		totalUpdated += summary.Updated
	}

	s.mutex.Lock()
	s.lastRun = time.Now()
	s.mutex.Unlock()

	log.Printf("Refresh completado para %d usuarios, %d inversiones actualizadas", len(userIDs), totalUpdated)
}

// LastRun devuelve la última vez que corrió el refresh periódico
func (s *RefreshScheduler) LastRun() time.Time {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	return s.lastRun
}
