package entities

import (
	"github.com/JonMunkholm/assettrack/internal/core"
	"github.com/JonMunkholm/assettrack/internal/importer"
)

var licenses = core.EntityDefinition{
	Info: core.EntityInfo{
		Key:   core.LicensesKey,
		Group: GroupPeople,
		Label: "Licenças",
		File:  "licencas.json",
	},
	Fields: []string{
		"email", "matricula", "nome", "filial", "cargo", "licenca", "qtde",
		"departamento", "empresa", "observacao", "situacao", "data_desligamento",
	},
	// Header variants such as "E-mail" or "Licença" normalize onto the
	// canonical names, so no aliases are listed.
	Schema: importer.MustSchema(
		importer.Field{Name: "email"},
		importer.Field{Name: "matricula"},
		importer.Field{Name: "nome"},
		importer.Field{Name: "filial"},
		importer.Field{Name: "cargo"},
		importer.Field{Name: "licenca"},
		importer.Field{Name: "qtde"},
		importer.Field{Name: "departamento"},
		importer.Field{Name: "empresa"},
	),
	Accept:   core.RequireAny("nome", "email"),
	Defaults: map[string]string{"situacao": "ATIVO"},
}

var vpn = core.EntityDefinition{
	Info: core.EntityInfo{
		Key:   "vpn",
		Group: GroupPeople,
		Label: "VPN",
		File:  "vpn.json",
	},
	Fields: []string{"nome", "email", "filial", "data_solicitacao", "data_retirada", "status", "glpi_chamado"},
	Schema: importer.MustSchema(
		importer.Field{Name: "nome", Aliases: []string{"nome", "colaborador", "solicitante"}},
		importer.Field{Name: "email", Aliases: []string{"email", "e-mail"}},
		importer.Field{Name: "data_solicitacao", Aliases: []string{"data da solicitacao", "data solicitacao"}},
		importer.Field{Name: "data_retirada", Aliases: []string{"data de retirada", "data retirada"}},
		importer.Field{Name: "status", Aliases: []string{"status", "feito", "situação"}},
		importer.Field{Name: "glpi_chamado", Aliases: []string{"glpi", "chamado", "nº chamado"}},
	),
	Accept: core.RequireAny("nome", "email"),
}

var vacations = core.EntityDefinition{
	Info: core.EntityInfo{
		Key:   "vacations",
		Group: GroupPeople,
		Label: "Férias",
		File:  "ferias.json",
	},
	Fields: []string{
		"nome", "data_saida", "data_retorno", "departamento_filial",
		"ad", "email", "totvs", "crm", "john_deere", "atendente",
	},
	Schema: importer.MustSchema(
		importer.Field{Name: "nome", Aliases: []string{"nome_completo"}},
		importer.Field{Name: "data_saida", Aliases: []string{"data_de_saida"}},
		importer.Field{Name: "data_retorno", Aliases: []string{"data_de_retorno"}},
		importer.Field{Name: "departamento_filial", Aliases: []string{"departamento_e_filial"}},
		importer.Field{Name: "ad", Aliases: []string{"ad"}},
		importer.Field{Name: "email", Aliases: []string{"email"}},
		importer.Field{Name: "totvs", Aliases: []string{"totvs"}},
		importer.Field{Name: "crm", Aliases: []string{"crm"}},
		importer.Field{Name: "john_deere", Aliases: []string{"john_deere"}},
		importer.Field{Name: "atendente", Aliases: []string{"atendente"}},
	),
	Accept: core.RequireAny("nome"),
}
