package reconcile

import (
	"plansync/internal/extractor"
	"plansync/internal/gateway"
	"plansync/pkg/datemath"
	pkgLog "plansync/pkg/log"
)

type implEngine struct {
	l         pkgLog.Logger
	extractor extractor.Extractor
	gateway   gateway.Gateway
	creds     gateway.CredentialProvider
	dateMath  *datemath.Parser
	cfg       Config
}

// New creates the reconciliation engine. creds may be nil when the gateway
// manages its own credential.
func New(
	l pkgLog.Logger,
	ext extractor.Extractor,
	gw gateway.Gateway,
	creds gateway.CredentialProvider,
	dateMath *datemath.Parser,
	cfg Config,
) Engine {
	return &implEngine{
		l:         l,
		extractor: ext,
		gateway:   gw,
		creds:     creds,
		dateMath:  dateMath,
		cfg:       cfg.withDefaults(),
	}
}
