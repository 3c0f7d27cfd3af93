package entities

import (
	"github.com/JonMunkholm/assettrack/internal/core"
	"github.com/JonMunkholm/assettrack/internal/importer"
)

var equipment = core.EntityDefinition{
	Info: core.EntityInfo{
		Key:   "equipment",
		Group: GroupInfrastructure,
		Label: "Equipamentos",
		File:  "equipamentos.json",
	},
	Fields: []string{
		"nome", "cpf", "cargo", "filial", "descricao_filial", "cc", "descricao_cc",
		"tipo", "marca", "modelo", "numero_serie", "patrimonio", "acessorios", "anc", "termo_assinado",
	},
	// Spreadsheets label the branch either "filial" or "descricao_filial";
	// both land in filial on import.
	Schema: importer.MustSchema(
		importer.Field{Name: "nome", Aliases: []string{"colaborador", "funcionario"}},
		importer.Field{Name: "cpf"},
		importer.Field{Name: "cargo"},
		importer.Field{Name: "filial", Aliases: []string{"filial", "descricao_filial"}},
		importer.Field{Name: "cc", Aliases: []string{"centro de custo"}},
		importer.Field{Name: "descricao_cc"},
		importer.Field{Name: "tipo", Aliases: []string{"tipo de equipamento"}},
		importer.Field{Name: "marca"},
		importer.Field{Name: "modelo"},
		importer.Field{Name: "numero_serie", Aliases: []string{"serial", "serial number"}},
		importer.Field{Name: "patrimonio", Aliases: []string{"asset", "etiqueta"}},
		importer.Field{Name: "acessorios", Aliases: []string{"observacao"}},
		importer.Field{Name: "anc"},
		importer.Field{Name: "termo_assinado", Aliases: []string{"termo"}},
	),
	Accept:   core.RequireAny("nome", "numero_serie", "patrimonio"),
	Defaults: map[string]string{"situacao": "ATIVO"},
}

var cameras = core.EntityDefinition{
	Info: core.EntityInfo{
		Key:   "cameras",
		Group: GroupInfrastructure,
		Label: "Câmeras",
		File:  "cameras.json",
	},
	Fields: []string{"filial", "loja", "localidade", "nome", "acesso_web", "ip", "descricao", "observacao", "portas"},
	Schema: importer.MustSchema(
		importer.Field{Name: "filial"},
		importer.Field{Name: "loja"},
		importer.Field{Name: "localidade"},
		importer.Field{Name: "nome"},
		importer.Field{Name: "acesso_web", Aliases: []string{"acesso via web"}},
		importer.Field{Name: "ip"},
		importer.Field{Name: "descricao"},
	),
	Accept: core.RequireAny("nome", "ip"),
}

var printers = core.EntityDefinition{
	Info: core.EntityInfo{
		Key:   "printers",
		Group: GroupInfrastructure,
		Label: "Impressoras",
		File:  "impressoras.json",
	},
	Fields: []string{
		"filial", "porta_ip", "impressora", "modelo", "serial", "login", "senha",
		"scanner", "nf", "departamento", "responsavel", "mod_toner",
	},
	Schema: importer.MustSchema(
		importer.Field{Name: "filial", Aliases: []string{"filial"}},
		importer.Field{Name: "porta_ip", Aliases: []string{"porta_ip", "ip"}},
		importer.Field{Name: "impressora", Aliases: []string{"impressora"}},
		importer.Field{Name: "modelo", Aliases: []string{"modelo"}},
		importer.Field{Name: "serial", Aliases: []string{"serial", "numero_serie"}},
		importer.Field{Name: "login", Aliases: []string{"login", "usuario"}},
		importer.Field{Name: "senha", Aliases: []string{"senha"}},
		importer.Field{Name: "scanner", Aliases: []string{"scanner"}},
		importer.Field{Name: "nf", Aliases: []string{"nf"}},
		importer.Field{Name: "departamento", Aliases: []string{"departamento"}},
		importer.Field{Name: "responsavel", Aliases: []string{"responsavel"}},
		importer.Field{Name: "mod_toner", Aliases: []string{"mod_toner", "modelo_toner"}},
	),
	Accept: core.RequireAny("impressora", "serial", "porta_ip"),
}
