package services

import (
	"github.com/dmitrijs2005/waterbill/internal/logging"
	"github.com/dmitrijs2005/waterbill/internal/server/auth"
	"github.com/dmitrijs2005/waterbill/internal/server/mailer"
	"github.com/dmitrijs2005/waterbill/internal/server/repositories/repomanager"
)

// Deps are the collaborators shared by the services.
type Deps struct {
	Hasher              auth.PasswordHasher
	Tokens              TokenIssuer
	Seed                AdminSeed
	Transport           mailer.Transport
	Archive             ReportArchive
	ReminderConcurrency int
}

// Services bundles everything the transports call.
type Services struct {
	Users     *UserService
	Readings  *ReadingService
	Bills     *BillService
	Reminders *ReminderService
}

func New(repos repomanager.RepositoryManager, deps Deps, log logging.Logger) *Services {
	return &Services{
		Users:     NewUserService(repos, deps.Hasher, deps.Tokens, deps.Seed, log),
		Readings:  NewReadingService(repos, log),
		Bills:     NewBillService(repos, deps.Archive, log),
		Reminders: NewReminderService(repos, deps.Transport, log, deps.ReminderConcurrency),
	}
}
