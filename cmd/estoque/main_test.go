package main

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Marcos6585/Sistema-de-estoque/pkg/config"
)

// A mensagem de "painel iniciado" usa o host e a porta configurados,
// não um endereço fixo.
func TestDashboardURL_UsaConfiguracao(t *testing.T) {
	assert.Equal(t, "http://estoque.interno:9090",
		dashboardURL(config.HTTPConfig{Host: "estoque.interno", Port: 9090}))
}

func TestDashboardURL_HostDeEscutaViraLocalhost(t *testing.T) {
	assert.Equal(t, "http://localhost:8080",
		dashboardURL(config.HTTPConfig{Host: "0.0.0.0", Port: 8080}))
	assert.Equal(t, "http://localhost:3000",
		dashboardURL(config.HTTPConfig{Host: "", Port: 3000}))
}
