package importer

import (
	"errors"
	"math"
	"reflect"
	"testing"
)

func stockSchema(t *testing.T) *Schema {
	t.Helper()
	s, err := NewSchema(
		Field{Name: "produto"},
		Field{Name: "qtd_estoque", Aliases: []string{"estoque", "quantidade"}},
	)
	if err != nil {
		t.Fatalf("NewSchema: %v", err)
	}
	return s
}

func TestNewSchema_Validation(t *testing.T) {
	tests := []struct {
		name    string
		fields  []Field
		wantErr error
	}{
		{"valid", []Field{{Name: "a"}, {Name: "b"}}, nil},
		{"empty name", []Field{{Name: "a"}, {Name: ""}}, ErrEmptyFieldName},
		{"duplicate name", []Field{{Name: "filial"}, {Name: "cargo"}, {Name: "filial"}}, ErrDuplicateField},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewSchema(tt.fields...)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("NewSchema() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestSchema_Immutable(t *testing.T) {
	aliases := []string{"estoque"}
	s := MustSchema(Field{Name: "qtd_estoque", Aliases: aliases})

	aliases[0] = "changed"
	s.Fields()[0].Aliases[0] = "changed again"

	if got := s.Fields()[0].Aliases[0]; got != "estoque" {
		t.Errorf("schema alias mutated to %q", got)
	}
}

func TestMustSchema_Panics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("MustSchema should panic on duplicate fields")
		}
	}()
	MustSchema(Field{Name: "x"}, Field{Name: "x"})
}

func TestMapper_Match(t *testing.T) {
	m := NewMapper(stockSchema(t), DefaultThreshold)

	tests := []struct {
		header     string
		wantField  string
		wantScore  int
		wantMapped bool
	}{
		{"Produto", "produto", 100, true},
		{"  PRODUTO ", "produto", 100, true},
		{"Estoque", "qtd_estoque", 100, true},
		{"Qtd Estoque", "qtd_estoque", 100, true},
		{"Quantidad", "qtd_estoque", 95, true},
		{"Estoq", "qtd_estoque", 90, true},
		{"xyz", "", 0, false},
		{"", "", 0, false},
		{"***", "", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.header, func(t *testing.T) {
			got := m.Match(tt.header)
			if got.Mapped != tt.wantMapped {
				t.Fatalf("Match(%q).Mapped = %v (score %d, field %q), want %v",
					tt.header, got.Mapped, got.Score, got.Field, tt.wantMapped)
			}
			if !tt.wantMapped {
				return
			}
			if got.Field != tt.wantField {
				t.Errorf("Match(%q).Field = %q, want %q", tt.header, got.Field, tt.wantField)
			}
			if got.Score != tt.wantScore {
				t.Errorf("Match(%q).Score = %d, want %d", tt.header, got.Score, tt.wantScore)
			}
		})
	}
}

func TestMapper_ExactAliasScores100(t *testing.T) {
	s := MustSchema(
		Field{Name: "numero_serie", Aliases: []string{"serial", "serial number"}},
		Field{Name: "patrimonio", Aliases: []string{"asset", "etiqueta"}},
	)
	m := NewMapper(s, DefaultThreshold)

	for _, header := range []string{"Número Série", "numero serie", "SERIAL", "Serial-Number", "Etiqueta", "patrimônio"} {
		got := m.Match(header)
		if got.Score != 100 || !got.Mapped {
			t.Errorf("Match(%q) = %+v, want score 100 and mapped", header, got)
		}
	}

	// The extra "de" token leaves numero serie as a token subset, scored 100*0.95.
	if got := m.Match("Número de Série"); got.Field != "numero_serie" || got.Score != 95 {
		t.Errorf("Match(Número de Série) = %+v, want numero_serie with score 95", got)
	}
}

func TestMapper_TokenOrderIndependent(t *testing.T) {
	m := NewMapper(MustSchema(Field{Name: "numero_serie"}), DefaultThreshold)

	got := m.Match("Serie Numero")
	if got.Score != 95 || !got.Mapped || got.Field != "numero_serie" {
		t.Errorf("Match(Serie Numero) = %+v, want numero_serie mapped with score 95", got)
	}
}

func TestMapper_QualifierWords(t *testing.T) {
	m := NewMapper(MustSchema(
		Field{Name: "email"},
		Field{Name: "matricula"},
		Field{Name: "nome"},
		Field{Name: "filial"},
		Field{Name: "cargo"},
		Field{Name: "licenca"},
		Field{Name: "qtde"},
		Field{Name: "departamento"},
		Field{Name: "empresa"},
	), DefaultThreshold)

	tests := []struct {
		header     string
		wantField  string
		wantScore  int
		wantMapped bool
	}{
		{"Nome Completo", "nome", 90, true},
		{"Cargo Atual", "cargo", 90, true},
		{"Nome do Colaborador", "nome", 90, true},
		{"Empresa Contratante", "empresa", 90, true},
		{"Matrícula Funcional", "matricula", 90, true},
		{"Departamento / Setor", "departamento", 90, true},
		{"Filial SP", "filial", 90, true},
		// "e mail" shares no token with "email" and only "mail" aligns.
		{"E-mail Corporativo", "email", 76, false},
		{"Observação", "cargo", 68, false},
	}

	for _, tt := range tests {
		t.Run(tt.header, func(t *testing.T) {
			got := m.Match(tt.header)
			if got.Field != tt.wantField || got.Score != tt.wantScore || got.Mapped != tt.wantMapped {
				t.Errorf("Match(%q) = %+v, want field %q score %d mapped %v",
					tt.header, got, tt.wantField, tt.wantScore, tt.wantMapped)
			}
		})
	}
}

func TestRatios(t *testing.T) {
	tests := []struct {
		name string
		got  float64
		want float64
	}{
		{"indel substitution costs two", indelRatio([]rune("abc"), []rune("abd")), 200.0 / 3},
		{"indel kitten sitting", indelRatio([]rune("kitten"), []rune("sitting")), 800.0 / 13},
		{"indel both empty", indelRatio(nil, nil), 100},
		{"partial substring", partialRatio([]rune("nome"), []rune("nome completo")), 100},
		{"partial best window", partialRatio([]rune("email"), []rune("e mail corporativo")), 80},
		{"partial argument order", partialRatio([]rune("nome completo"), []rune("nome")), 100},
		{"token sort", tokenSortRatio([]string{"serie", "numero"}, []string{"numero", "serie"}), 100},
		{"token set subset", tokenSetRatio([]string{"data", "de", "saida"}, []string{"data", "saida"}), 100},
		{"token set partial overlap", tokenSetRatio([]string{"nome", "completo"}, []string{"nome", "social"}), 700.0 / 12},
		{"token set empty", tokenSetRatio(nil, []string{"nome"}), 0},
		{"partial token shared", partialTokenRatio([]string{"cargo", "atual"}, []string{"cargo"}), 100},
		{"partial token edge window", partialTokenRatio([]string{"e", "mail"}, []string{"email"}), 800.0 / 9},
	}

	for _, tt := range tests {
		if math.Abs(tt.got-tt.want) > 1e-9 {
			t.Errorf("%s = %v, want %v", tt.name, tt.got, tt.want)
		}
	}
}

func TestMapper_TieBreakDeclarationOrder(t *testing.T) {
	m := NewMapper(MustSchema(
		Field{Name: "abcd"},
		Field{Name: "abce"},
	), DefaultThreshold)

	got := m.Match("abcx")
	if got.Field != "abcd" {
		t.Errorf("Match(abcx).Field = %q, want first declared %q", got.Field, "abcd")
	}
	if got.Score != 75 {
		t.Errorf("Match(abcx).Score = %d, want 75", got.Score)
	}

	reversed := NewMapper(MustSchema(
		Field{Name: "abce"},
		Field{Name: "abcd"},
	), DefaultThreshold)
	if got := reversed.Match("abcx"); got.Field != "abce" {
		t.Errorf("reversed Match(abcx).Field = %q, want %q", got.Field, "abce")
	}
}

func TestMapper_DuplicateAliasFirstDeclaredWins(t *testing.T) {
	m := NewMapper(MustSchema(
		Field{Name: "porta_ip", Aliases: []string{"ip"}},
		Field{Name: "endereco", Aliases: []string{"IP"}},
	), DefaultThreshold)

	if got := m.Match("ip"); got.Field != "porta_ip" {
		t.Errorf("Match(ip).Field = %q, want porta_ip", got.Field)
	}
}

func TestMapper_Threshold(t *testing.T) {
	schema := stockSchema(t)

	strict := NewMapper(schema, 95)
	if got := strict.Match("Estoq"); got.Mapped {
		t.Errorf("threshold 95 should reject Estoq (score %d)", got.Score)
	}
	if got := strict.Match("Estoq"); got.Field != "qtd_estoque" {
		t.Errorf("best candidate should still be reported, got %q", got.Field)
	}

	for _, bad := range []int{0, -5, 101} {
		if got := NewMapper(schema, bad).Threshold(); got != DefaultThreshold {
			t.Errorf("NewMapper(threshold=%d).Threshold() = %d, want %d", bad, got, DefaultThreshold)
		}
	}
}

func TestMapper_MapHeaders(t *testing.T) {
	m := NewMapper(stockSchema(t), DefaultThreshold)
	hm := m.MapHeaders([]string{"Produto", "Preço", "Estoque"})

	if hm.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", hm.Len())
	}
	if f, ok := hm.Field("Produto"); !ok || f != "produto" {
		t.Errorf("Field(Produto) = %q, %v", f, ok)
	}
	if f, ok := hm.Field("Estoque"); !ok || f != "qtd_estoque" {
		t.Errorf("Field(Estoque) = %q, %v", f, ok)
	}
	if _, ok := hm.Field("Preço"); ok {
		t.Error("Preço should be unmapped")
	}
	if got := hm.Unmapped(); !reflect.DeepEqual(got, []string{"Preço"}) {
		t.Errorf("Unmapped() = %v", got)
	}
	if got := hm.Conflicts(); len(got) != 0 {
		t.Errorf("Conflicts() = %v, want none", got)
	}
}

func TestHeaderMap_Conflicts(t *testing.T) {
	m := NewMapper(stockSchema(t), DefaultThreshold)
	hm := m.MapHeaders([]string{"Estoque", "Produto", "Quantidade"})

	want := []Conflict{{Field: "qtd_estoque", Headers: []string{"Estoque", "Quantidade"}}}
	if got := hm.Conflicts(); !reflect.DeepEqual(got, want) {
		t.Errorf("Conflicts() = %+v, want %+v", got, want)
	}
}

func TestMapper_Analyze(t *testing.T) {
	m := NewMapper(stockSchema(t), DefaultThreshold)
	got := m.Analyze([]string{"Produto", "zzz"})

	if len(got) != 2 {
		t.Fatalf("Analyze returned %d matches, want 2", len(got))
	}
	if got[0].Header != "Produto" || !got[0].Mapped || got[0].Score != 100 {
		t.Errorf("match[0] = %+v", got[0])
	}
	if got[1].Header != "zzz" || got[1].Mapped {
		t.Errorf("match[1] = %+v, want unmapped", got[1])
	}
}

func TestScore(t *testing.T) {
	tests := []struct {
		a, b string
		want int
	}{
		{"E-mail", "email", 100},
		{"Email", "mail", 89},
		{"Num Serie", "numero serie", 86},
		{"Nome Completo", "nome", 90},
		{"nome", "Nome Completo", 90},
		{"Data Saída", "data de saida", 95},
		{"IP", "endereco ip do servidor de impressao", 60},
		{"", "nome", 0},
		{"nome", "", 0},
	}

	for _, tt := range tests {
		if got := Score(tt.a, tt.b); got != tt.want {
			t.Errorf("Score(%q, %q) = %d, want %d", tt.a, tt.b, got, tt.want)
		}
	}
}
