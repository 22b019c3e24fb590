package service

import (
	"fmt"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// NumeroDemasiadoGrande is returned for amounts of a billion pesos or more,
// which no claim here will ever reach.
const NumeroDemasiadoGrande = "número demasiado grande"

var unidades = [10]string{
	"cero", "uno", "dos", "tres", "cuatro",
	"cinco", "seis", "siete", "ocho", "nueve",
}

var especiales = [10]string{
	"diez", "once", "doce", "trece", "catorce",
	"quince", "dieciséis", "diecisiete", "dieciocho", "diecinueve",
}

var decenas = [10]string{
	"", "", "veinte", "treinta", "cuarenta",
	"cincuenta", "sesenta", "setenta", "ochenta", "noventa",
}

var centenas = [10]string{
	"", "ciento", "doscientos", "trescientos", "cuatrocientos",
	"quinientos", "seiscientos", "setecientos", "ochocientos", "novecientos",
}

// NumeroALetras renders an integer in [0, 10^9) as Spanish cardinal words in
// the register used by demand letters ("ciento cincuenta mil"). Exact tens
// keep the bare tens word; other tens join units with "y". 100 is "cien",
// 1000 is "mil" and 1000000 is "un millón" with no leading count word.
// Anything outside that range, including negatives, gets the sentinel.
func NumeroALetras(n int64) string {
	switch {
	case n < 0 || n >= 1_000_000_000:
		return NumeroDemasiadoGrande
	case n < 10:
		return unidades[n]
	case n < 20:
		return especiales[n-10]
	case n < 100:
		if n%10 == 0 {
			return decenas[n/10]
		}
		return decenas[n/10] + " y " + unidades[n%10]
	case n == 100:
		return "cien"
	case n < 1000:
		if n%100 == 0 {
			return centenas[n/100]
		}
		return centenas[n/100] + " " + NumeroALetras(n%100)
	case n < 1_000_000:
		miles := "mil"
		if n/1000 > 1 {
			miles = NumeroALetras(n/1000) + " mil"
		}
		if n%1000 == 0 {
			return miles
		}
		return miles + " " + NumeroALetras(n%1000)
	default:
		millones := "un millón"
		if n/1_000_000 > 1 {
			millones = NumeroALetras(n/1_000_000) + " millones"
		}
		if n%1_000_000 == 0 {
			return millones
		}
		return millones + " " + NumeroALetras(n%1_000_000)
	}
}

var printerAR = message.NewPrinter(language.MustParse("es-AR"))

// FormatearMonto renders an amount with Argentine grouping and two decimals,
// e.g. "$ 150.000,00".
func FormatearMonto(monto float64) string {
	return "$ " + printerAR.Sprint(number.Decimal(monto,
		number.MinFractionDigits(2),
		number.MaxFractionDigits(2),
	))
}

var meses = [12]string{
	"enero", "febrero", "marzo", "abril", "mayo", "junio",
	"julio", "agosto", "septiembre", "octubre", "noviembre", "diciembre",
}

// ZonaArgentina is the reference time zone for every date decision in the
// backend, regardless of where the server runs.
var ZonaArgentina = func() *time.Location {
	loc, err := time.LoadLocation("America/Argentina/Buenos_Aires")
	if err != nil {
		return time.FixedZone("-03", -3*60*60)
	}
	return loc
}()

// FormatearFecha renders a long-form localized date, "18 de octubre de 2025".
func FormatearFecha(t time.Time) string {
	t = t.In(ZonaArgentina)
	return fmt.Sprintf("%d de %s de %d", t.Day(), meses[t.Month()-1], t.Year())
}
