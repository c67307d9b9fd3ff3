package api

import (
	"github.com/megacare-dev/mega-care-api/auth"
	"github.com/megacare-dev/mega-care-api/clinicians"
	"github.com/megacare-dev/mega-care-api/config"
	"github.com/megacare-dev/mega-care-api/customers"
	"github.com/megacare-dev/mega-care-api/line"
	"github.com/megacare-dev/mega-care-api/linking"
	"github.com/megacare-dev/mega-care-api/reports"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

type Handler struct {
	cfg        *config.Config
	customers  customers.Service
	clinicians clinicians.Service
	linker     linking.DeviceLinker
	line       line.Client
	idTokens   *line.IDTokenVerifier
	issuer     *auth.Issuer
	analyzer   *reports.Analyzer
	logger     *zap.SugaredLogger
}

type Params struct {
	fx.In

	Config     *config.Config
	Customers  customers.Service
	Clinicians clinicians.Service
	Linker     linking.DeviceLinker
	Line       line.Client
	IDTokens   *line.IDTokenVerifier
	Issuer     *auth.Issuer
	Analyzer   *reports.Analyzer
	Logger     *zap.SugaredLogger
}

func NewHandler(p Params) *Handler {
	return &Handler{
		cfg:        p.Config,
		customers:  p.Customers,
		clinicians: p.Clinicians,
		linker:     p.Linker,
		line:       p.Line,
		idTokens:   p.IDTokens,
		issuer:     p.Issuer,
		analyzer:   p.Analyzer,
		logger:     p.Logger,
	}
}
