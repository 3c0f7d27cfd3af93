package core

import (
	"reflect"
	"testing"
)

func TestRegistry(t *testing.T) {
	r := NewRegistry()
	r.Register(EntityDefinition{Info: EntityInfo{Key: "vpn", Group: "Pessoas"}})
	r.Register(EntityDefinition{Info: EntityInfo{Key: "cameras", Group: "Infraestrutura", File: "cameras.json"}})
	r.Register(EntityDefinition{Info: EntityInfo{Key: "licenses", Group: "Pessoas"}})

	if got := r.Len(); got != 3 {
		t.Errorf("Len() = %d, want 3", got)
	}

	def, ok := r.Get("vpn")
	if !ok {
		t.Fatal("Get(vpn) not found")
	}
	if def.Info.File != "vpn.json" {
		t.Errorf("default File = %q, want vpn.json", def.Info.File)
	}
	if _, ok := r.Get("boats"); ok {
		t.Error("Get(boats) should not be found")
	}

	var keys []string
	for _, d := range r.All() {
		keys = append(keys, d.Info.Key)
	}
	if want := []string{"cameras", "licenses", "vpn"}; !reflect.DeepEqual(keys, want) {
		t.Errorf("All() order = %v, want %v", keys, want)
	}

	if got := r.Groups(); !reflect.DeepEqual(got, []string{"Infraestrutura", "Pessoas"}) {
		t.Errorf("Groups() = %v", got)
	}
	if got := r.ByGroup("Pessoas"); len(got) != 2 || got[0].Info.Key != "licenses" {
		t.Errorf("ByGroup(Pessoas) = %v", got)
	}
}

func TestRegistry_RegisterPanics(t *testing.T) {
	tests := []struct {
		name string
		defs []EntityDefinition
	}{
		{"duplicate key", []EntityDefinition{{Info: EntityInfo{Key: "a"}}, {Info: EntityInfo{Key: "a"}}}},
		{"empty key", []EntityDefinition{{Info: EntityInfo{}}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			defer func() {
				if recover() == nil {
					t.Error("Register should panic")
				}
			}()
			r := NewRegistry()
			for _, d := range tt.defs {
				r.Register(d)
			}
		})
	}
}

func TestRegistry_Suggest(t *testing.T) {
	r := NewRegistry()
	r.Register(EntityDefinition{Info: EntityInfo{Key: "vpn"}})
	r.Register(EntityDefinition{Info: EntityInfo{Key: "cameras"}})
	r.Register(EntityDefinition{Info: EntityInfo{Key: "licenses"}})

	tests := []struct {
		key  string
		want []string
	}{
		{"licences", []string{"licenses"}},
		{" Licenses ", []string{"licenses"}},
		{"cam", []string{"cameras"}},
		{"vnp", []string{"vpn"}},
		{"boats", nil},
		{"", nil},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			if got := r.Suggest(tt.key); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Suggest(%q) = %v, want %v", tt.key, got, tt.want)
			}
		})
	}
}
