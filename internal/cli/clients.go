package cli

import (
	"github.com/emreeozkull/biletbudur-cli/internal/auth"
	"github.com/emreeozkull/biletbudur-cli/internal/cloud/biletbudur"
)

// Clients are the clients a command handler works with
type Clients struct {
	Biletbudur biletbudur.Client
	Session    *auth.Service

	// Events reads the public event feed and holds no credentials
	Events biletbudur.Client
}
