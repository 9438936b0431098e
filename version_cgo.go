//go:build cgo

package relay

import (
	"github.com/clevertree/relay-clients/internal/api"
)

func librelaycoreVersionImpl() (string, error) {
	return api.RelayCoreVersion()
}
