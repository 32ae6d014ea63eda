package mask_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/controle-vendas/pkg/mask"
)

func TestCPF(t *testing.T) {
	cases := map[string]string{
		"":                "",
		"5":               "5",
		"529":             "529",
		"5299":            "529.9",
		"529982":          "529.982",
		"5299822":         "529.982.2",
		"529982247":       "529.982.247",
		"5299822472":      "529.982.247-2",
		"52998224725":     "529.982.247-25",
		"529.982.247-25":  "529.982.247-25",
		"529.98":          "529.98",
		"529982247251":    "529982247251",
		"529.982.247-251": "529.982.247-251",
		"abc":             "",
	}
	for in, want := range cases {
		assert.Equal(t, want, mask.CPF(in), in)
	}
}

func TestPhone(t *testing.T) {
	cases := map[string]string{
		"":                 "",
		"1":                "(1",
		"11":               "(11) ",
		"119":              "(11) 9",
		"1198765":          "(11) 98765",
		"11987654":         "(11) 98765-4",
		"11987654321":      "(11) 98765-4321",
		"1187654321":       "(11) 87654-321",
		"(11) 98765-4321":  "(11) 98765-4321",
		"(11) 98765-43210": "(11) 98765-43210",
	}
	for in, want := range cases {
		assert.Equal(t, want, mask.Phone(in), in)
	}
}

func TestDate(t *testing.T) {
	cases := map[string]string{
		"":            "",
		"1":           "1",
		"15":          "15",
		"150":         "15/0",
		"1503":        "15/03",
		"15032":       "15/03/2",
		"15032024":    "15/03/2024",
		"15/03/2024":  "15/03/2024",
		"150320241":   "150320241",
		"15/03/20241": "15/03/20241",
	}
	for in, want := range cases {
		assert.Equal(t, want, mask.Date(in), in)
	}
}

func TestCurrency(t *testing.T) {
	cases := map[string]string{
		"":            "R$ 0,00",
		"abc":         "R$ 0,00",
		"1":           "R$ 0,01",
		"15":          "R$ 0,15",
		"150":         "R$ 1,50",
		"R$ 1,50":     "R$ 1,50",
		"R$ 1,505":    "R$ 15,05",
		"123456":      "R$ 1.234,56",
		"R$ 1.234,56": "R$ 1.234,56",
	}
	for in, want := range cases {
		assert.Equal(t, want, mask.Currency(in), in)
	}
}

func TestApply(t *testing.T) {
	out, ok := mask.Apply(mask.KindCPF, "52998224725")
	assert.True(t, ok)
	assert.Equal(t, "529.982.247-25", out)

	out, ok = mask.Apply(mask.Kind("cep"), "01001000")
	assert.False(t, ok)
	assert.Equal(t, "01001000", out)
}
