package utils

import "testing"

func TestNormalize(t *testing.T) {
	cases := []struct {
		in, want string
	}{
		{"  Área/Setor ", "area/setor"},
		{"Ativa", "ativa"},
		{"NOME DO BAIRRO", "nome do bairro"},
		{"São João", "sao joao"},
		{"", ""},
	}
	for _, tc := range cases {
		if got := Normalize(tc.in); got != tc.want {
			t.Errorf("Normalize(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestTruthy(t *testing.T) {
	for _, v := range []string{"Sim", "s", "TRUE", "1", "y", "yes", "Ativo", "ATIVA", "on", "ok", " SIM "} {
		if !Truthy(v) {
			t.Errorf("Truthy(%q) = false, want true", v)
		}
	}
	for _, v := range []string{"", "Não", "nao", "0", "false", "off", "inativo"} {
		if Truthy(v) {
			t.Errorf("Truthy(%q) = true, want false", v)
		}
	}
}
