package entities

import (
	"github.com/JonMunkholm/assettrack/internal/core"
	"github.com/JonMunkholm/assettrack/internal/importer"
)

var peripheralStock = core.EntityDefinition{
	Info: core.EntityInfo{
		Key:   core.PeripheralStockKey,
		Group: GroupPeripherals,
		Label: "Estoque",
		File:  "perifericos_estoque.json",
	},
	Fields: []string{"produto", "qtd_estoque", "cod_totvs", "onde_comprar"},
	Schema: importer.MustSchema(
		importer.Field{Name: "produto", Aliases: []string{"produto", "item", "descrição"}},
		importer.Field{Name: "qtd_estoque", Aliases: []string{"qtd estoque", "qtd_estoque", "estoque", "quantidade"}},
		importer.Field{Name: "cod_totvs", Aliases: []string{"cod totvs", "codigo", "cód totvs"}},
		importer.Field{Name: "onde_comprar", Aliases: []string{"onde comprar", "fornecedor", "comprar em"}},
	),
	Accept: core.RequireAny("produto"),
}

// Deliveries are created by core.Service.DeliverPeripheral or edited by
// hand; there is no spreadsheet import for them.
var peripheralDeliveries = core.EntityDefinition{
	Info: core.EntityInfo{
		Key:   core.PeripheralDeliveriesKey,
		Group: GroupPeripherals,
		Label: "Entregas",
		File:  "perifericos_entregas.json",
	},
	Fields: []string{"glpi", "solicitante", "produto_id", "produto_nome", "qtd", "observacao"},
}
