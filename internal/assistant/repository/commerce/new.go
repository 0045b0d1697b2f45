package commerce

import (
	"commerce-assistant/internal/assistant/repository"
	pkgCommerce "commerce-assistant/pkg/commerce"
	pkgLog "commerce-assistant/pkg/log"
)

type implRepository struct {
	client *pkgCommerce.Client
	l      pkgLog.Logger
}

var _ repository.CommerceRepository = (*implRepository)(nil)

// New creates a CommerceRepository backed by the Java commerce services.
func New(client *pkgCommerce.Client, l pkgLog.Logger) *implRepository {
	return &implRepository{
		client: client,
		l:      l,
	}
}
