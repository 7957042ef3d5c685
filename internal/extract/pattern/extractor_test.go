package pattern

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agrosuivi/farmdesk/constants"
	"github.com/agrosuivi/farmdesk/internal/extract"
)

func TestFrenchSiretChecksum(t *testing.T) {
	e := NewFrench()

	t.Run("labeled siret with valid checksum", func(t *testing.T) {
		rs := e.Extract("SIRET: 73282932000074")
		res, ok := rs[extract.FieldSiret]
		require.True(t, ok)
		assert.Equal(t, "73282932000074", res.Value)
		assert.GreaterOrEqual(t, res.Confidence, 0.95)
		assert.Equal(t, constants.SourcePattern, res.Source)
		require.NotNil(t, res.Span)
		assert.Equal(t, "73282932000074", res.RawMatch)
	})

	t.Run("shape-correct but checksum-invalid is kept, downgraded", func(t *testing.T) {
		valid := e.Extract("SIRET: 73282932000074")[extract.FieldSiret]
		rs := e.Extract("SIRET: 73282932000075")
		res, ok := rs[extract.FieldSiret]
		require.True(t, ok, "invalid checksum must not drop the match")
		assert.Equal(t, "73282932000075", res.Value)
		assert.Less(t, res.Confidence, valid.Confidence)
	})

	t.Run("spaced digits are normalized", func(t *testing.T) {
		rs := e.Extract("N° SIRET : 732 829 320 00074")
		res, ok := rs[extract.FieldSiret]
		require.True(t, ok)
		assert.Equal(t, "73282932000074", res.Value)
		assert.GreaterOrEqual(t, res.Confidence, 0.95)
	})
}

func TestFrenchRegistryFields(t *testing.T) {
	e := NewFrench()
	text := `EXTRAIT KBIS
Dénomination sociale : EARL DES TROIS CHENES
Forme juridique : Exploitation agricole à responsabilité limitée
SIREN : 732829320
TVA intracommunautaire : FR40732829320
Code NAF : 01.13Z
Siège social : 12 chemin des Vignes, 21200 BEAUNE`

	rs := e.Extract(text)

	assert.Equal(t, "732829320", rs[extract.FieldSiren].Value)
	assert.GreaterOrEqual(t, rs[extract.FieldSiren].Confidence, 0.95)
	assert.Equal(t, "EARL DES TROIS CHENES", rs[extract.FieldFarmName].Value)
	assert.Equal(t, "FR40732829320", rs[extract.FieldVAT].Value)
	assert.Equal(t, "0113Z", rs[extract.FieldNAF].Value)
	assert.Equal(t, "21200", rs[extract.FieldPostalCode].Value)

	t.Run("different fields may share a span", func(t *testing.T) {
		pc, city := rs[extract.FieldPostalCode], rs[extract.FieldCity]
		require.NotNil(t, pc.Span)
		require.NotNil(t, city.Span)
		assert.Equal(t, "BEAUNE", city.Value)
	})
}

func TestRomanianRegistryFields(t *testing.T) {
	e := NewRomanian()
	text := `CERTIFICAT DE ÎNREGISTRARE
Denumire: FERMA AGRO VEST SRL
Cod unic de înregistrare: RO14399840
Nr. ordine în registrul comerțului: J35/1234/2010
Cont bancar: RO49 AAAA 1B31 0075 9384 0000`

	rs := e.Extract(text)

	res := rs[extract.FieldCUI]
	assert.Equal(t, "RO14399840", res.Value)
	assert.GreaterOrEqual(t, res.Confidence, 0.95)
	assert.Equal(t, "J35/1234/2010", rs[extract.FieldONRC].Value)
	assert.Equal(t, "RO49AAAA1B31007593840000", rs[extract.FieldIBAN].Value)
	assert.GreaterOrEqual(t, rs[extract.FieldIBAN].Confidence, 0.95)
	assert.Equal(t, "FERMA AGRO VEST SRL", rs[extract.FieldFarmName].Value)
}

func TestRomanianCNPLabeledOnly(t *testing.T) {
	e := NewRomanian()

	rs := e.Extract("CNP: 1980101221146")
	res, ok := rs[extract.FieldCNP]
	require.True(t, ok)
	assert.Equal(t, "1980101221146", res.Value)
	assert.GreaterOrEqual(t, res.Confidence, 0.95)

	// an unlabeled 13-digit run must not be picked up as a CNP
	rs = e.Extract("factura nr 1980101221146 din 2023")
	_, ok = rs[extract.FieldCNP]
	assert.False(t, ok)
}

func TestFinancialAmounts(t *testing.T) {
	e := NewFinancial()

	t.Run("subsidy ceiling with french grouping", func(t *testing.T) {
		rs := e.Extract("une aide d'un montant maximum de 50 000 € par exploitation")
		res, ok := rs[extract.FieldMaxAmount]
		require.True(t, ok)
		assert.Equal(t, float64(50000), res.Value)
		assert.Equal(t, "EUR", rs[extract.FieldCurrency].Value)
	})

	t.Run("turnover with european decimal", func(t *testing.T) {
		rs := e.Extract("Chiffre d'affaires annuel : 1.234.567,89 EUR")
		res, ok := rs[extract.FieldTurnover]
		require.True(t, ok)
		assert.InDelta(t, 1234567.89, res.Value.(float64), 0.001)
	})

	t.Run("romanian turnover and currency", func(t *testing.T) {
		rs := e.Extract("Cifra de afaceri: 820.000 lei")
		res, ok := rs[extract.FieldTurnover]
		require.True(t, ok)
		assert.Equal(t, float64(820000), res.Value)
		assert.Equal(t, "RON", rs[extract.FieldCurrency].Value)
	})

	t.Run("employee count", func(t *testing.T) {
		rs := e.Extract("Effectif : 12 salariés permanents")
		res, ok := rs[extract.FieldEmployees]
		require.True(t, ok)
		assert.Equal(t, float64(12), res.Value)
	})
}

func TestContactFields(t *testing.T) {
	e := NewContact()
	rs := e.Extract("Courriel : Contact@Ferme-Dupont.FR — Tél. : 03 80 12 34 56")

	assert.Equal(t, "contact@ferme-dupont.fr", rs[extract.FieldEmail].Value)
	assert.Equal(t, "0380123456", rs[extract.FieldPhone].Value)
}

func TestFirstMatchWins(t *testing.T) {
	e := NewFrench()
	// two labeled SIRETs: the first occurrence wins, no best-match search
	rs := e.Extract("SIRET: 73282932000074\nSIRET: 35600000000048")
	assert.Equal(t, "73282932000074", rs[extract.FieldSiret].Value)
}

func TestExtractorIsStateless(t *testing.T) {
	c := Default()
	text := "SIRET: 73282932000074, montant maximum de 50 000 €"
	first := c.Extract(text)
	second := c.Extract(text)
	assert.Equal(t, first, second)
}

func TestCompositeDoesNotOverwrite(t *testing.T) {
	c := Default()
	// both the French and Romanian extractors carry an IBAN family; the
	// first extractor in the chain keeps the field
	rs := c.Extract("IBAN : FR14 2004 1010 0505 0001 3M02 606")
	res, ok := rs[extract.FieldIBAN]
	require.True(t, ok)
	assert.Equal(t, "FR1420041010050500013M02606", res.Value)
	assert.GreaterOrEqual(t, res.Confidence, 0.95)
}

func TestAbsenceMeansAbsent(t *testing.T) {
	rs := Default().Extract("aucun identifiant ici")
	for field, res := range rs {
		assert.NotZero(t, res.Confidence, "field %s must not be reported at zero confidence", field)
	}
	_, ok := rs[extract.FieldSiret]
	assert.False(t, ok)
}
