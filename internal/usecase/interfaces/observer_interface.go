package interfaces

import "resident_service/internal/domain/entities"

// IAdvisoryObserver is notified of every advisory outcome.
type IAdvisoryObserver interface {
	ObserveAdvisory(kind entities.AdvisoryKind, outcome entities.AdvisoryOutcome)
}

// IWorkflowObserver is notified of order store and session lifecycle events.
type IWorkflowObserver interface {
	OrderUpserted(inserted bool)
	OrderDeleted()
	SessionOpened()
	SessionClosed()
}
