package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNumeroALetras(t *testing.T) {
	tests := []struct {
		n    int64
		want string
	}{
		{0, "cero"},
		{5, "cinco"},
		{9, "nueve"},
		{10, "diez"},
		{15, "quince"},
		{16, "dieciséis"},
		{19, "diecinueve"},
		{20, "veinte"},
		{21, "veinte y uno"},
		{47, "cuarenta y siete"},
		{90, "noventa"},
		{99, "noventa y nueve"},
		{100, "cien"},
		{101, "ciento uno"},
		{115, "ciento quince"},
		{200, "doscientos"},
		{531, "quinientos treinta y uno"},
		{999, "novecientos noventa y nueve"},
		{1000, "mil"},
		{1001, "mil uno"},
		{2000, "dos mil"},
		{21000, "veinte y uno mil"},
		{150000, "ciento cincuenta mil"},
		{999999, "novecientos noventa y nueve mil novecientos noventa y nueve"},
		{1000000, "un millón"},
		{1000001, "un millón uno"},
		{2000000, "dos millones"},
		{2500300, "dos millones quinientos mil trescientos"},
		{999999999, "novecientos noventa y nueve millones novecientos noventa y nueve mil novecientos noventa y nueve"},
		{1000000000, NumeroDemasiadoGrande},
		{-1, NumeroDemasiadoGrande},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, NumeroALetras(tt.n), "NumeroALetras(%d)", tt.n)
	}
}

func TestFormatearMonto(t *testing.T) {
	assert.Equal(t, "$ 150.000,00", FormatearMonto(150000))
	assert.Equal(t, "$ 1.234.567,89", FormatearMonto(1234567.89))
	assert.Equal(t, "$ 0,00", FormatearMonto(0))
	assert.Equal(t, "$ 980,50", FormatearMonto(980.5))
}

func TestFormatearFecha(t *testing.T) {
	fecha := time.Date(2025, time.October, 18, 12, 0, 0, 0, ZonaArgentina)
	assert.Equal(t, "18 de octubre de 2025", FormatearFecha(fecha))

	// A UTC instant just past midnight is still the previous day in Argentina.
	madrugada := time.Date(2025, time.October, 19, 1, 30, 0, 0, time.UTC)
	assert.Equal(t, "18 de octubre de 2025", FormatearFecha(madrugada))
}
