package synth

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultCatalog(t *testing.T) {
	c := DefaultCatalog()
	require.NoError(t, c.Validate())
	assert.Len(t, c.Specializations, 18)
	assert.Len(t, c.BloodTypes, 8)
	assert.Len(t, c.InsuranceProviders, 8)
	assert.Len(t, c.EncounterTypes, 10)
	assert.Len(t, c.BillingStatuses, 4)
	assert.Len(t, c.Diagnoses, 20)
	assert.Len(t, c.Medications, 30)

	// callers get independent copies
	c.Specializations[0] = "changed"
	assert.Equal(t, "Cardiology", DefaultCatalog().Specializations[0])
}

func TestLoadCatalog_OverridesSomeLists(t *testing.T) {
	doc := `
specializations: [Cardiology, Neurology]
diagnoses:
  - icd_code: J45
    name: Asthma
    category: Respiratory
    severity: Moderate
    chronic: true
`
	c, err := LoadCatalog(strings.NewReader(doc))
	require.NoError(t, err)
	assert.Equal(t, []string{"Cardiology", "Neurology"}, c.Specializations)
	require.Len(t, c.Diagnoses, 1)
	assert.Equal(t, DiagnosisSpec{"J45", "Asthma", "Respiratory", "Moderate", true}, c.Diagnoses[0])
	assert.Len(t, c.Medications, 30, "absent lists keep defaults")
}

func TestLoadCatalog_Empty(t *testing.T) {
	c, err := LoadCatalog(strings.NewReader(""))
	require.NoError(t, err)
	assert.Equal(t, DefaultCatalog(), c)
}

func TestLoadCatalog_Errors(t *testing.T) {
	tests := []struct {
		name string
		doc  string
		want string
	}{
		{"unknown_key", "surgeons: [a]\n", "decode catalog YAML"},
		{"empty_list", "blood_types: []\n", "blood_types must not be empty"},
		{"missing_icd", "diagnoses:\n  - name: X\n", "missing icd_code"},
		{"missing_med_name", "medications:\n  - generic_name: X\n", "missing name"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadCatalog(strings.NewReader(tt.doc))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestGenerate_WithCustomCatalog(t *testing.T) {
	c, err := LoadCatalog(strings.NewReader("medications:\n  - name: Aspirin\n    generic_name: Acetylsalicylic Acid\n    strength: 81mg\n    form: Tablet\n    route: Oral\n"))
	require.NoError(t, err)

	opts := DefaultOptions()
	opts.Catalog = c
	opts.MedicationNullRate = 0
	opts.Counts.Encounters = 20
	ds, err := Generate(opts)
	require.NoError(t, err)

	require.Len(t, ds.Medications, 1)
	for _, e := range ds.Encounters {
		require.NotNil(t, e.Prescription)
		assert.Equal(t, 1, e.Prescription.MedicationID)
	}
}

func TestGenerate_CatalogBackslashStaysInsideLiteral(t *testing.T) {
	c, err := LoadCatalog(strings.NewReader(`manufacturers: ["Acme Labs\\"]`))
	require.NoError(t, err)
	require.Equal(t, []string{`Acme Labs\`}, c.Manufacturers)

	opts := DefaultOptions()
	opts.Catalog = c
	opts.Counts.Encounters = 5
	ds, err := Generate(opts)
	require.NoError(t, err)

	rows := insertRows(t, ds.SQL(), "medications")
	require.Len(t, rows, len(ds.Medications))
	for _, row := range rows {
		toks := splitTuple(t, row)
		require.Len(t, toks, len(medicationColumns))
		assert.Equal(t, `'Acme Labs\\'`, toks[8])
		got, ok := unquote(t, toks[8])
		require.True(t, ok)
		assert.Equal(t, `Acme Labs\`, got)
		assert.Equal(t, "TRUE", toks[9])
	}
}
