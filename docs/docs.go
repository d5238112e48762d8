// Package docs registers the OpenAPI description of the gateway with swag.
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "contact": {},
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "securityDefinitions": {
        "BearerAuth": {
            "type": "apiKey",
            "name": "Authorization",
            "in": "header"
        }
    },
    "security": [{"BearerAuth": []}],
    "paths": {
        "/health": {
            "get": {
                "security": [],
                "summary": "Dependency health",
                "responses": {"200": {"description": "healthy or degraded"}}
            }
        },
        "/items": {
            "post": {
                "summary": "Save a school inventory item",
                "parameters": [{"in": "body", "name": "item", "required": true, "schema": {"type": "object"}}],
                "responses": {
                    "200": {"description": "item saved", "schema": {"$ref": "#/definitions/Envelope"}},
                    "400": {"description": "missing or invalid fields", "schema": {"$ref": "#/definitions/Envelope"}}
                }
            }
        },
        "/invoice": {
            "post": {
                "summary": "Save a school invoice",
                "parameters": [{"in": "body", "name": "invoice", "required": true, "schema": {"type": "object"}}],
                "responses": {"201": {"description": "invoice saved"}, "400": {"description": "missing school location"}}
            }
        },
        "/vsdc/initializer/selectInitInfo": {
            "post": {
                "summary": "Initialize a device",
                "responses": {"200": {"description": "device info", "schema": {"$ref": "#/definitions/Envelope"}}}
            }
        },
        "/vsdc/device-info/{tin}": {
            "get": {
                "summary": "Stored device info for a TIN",
                "parameters": [{"in": "path", "name": "tin", "required": true, "type": "string"}],
                "responses": {"200": {"description": "device info"}, "404": {"description": "device not initialized"}}
            }
        },
        "/vsdc/codes": {
            "get": {"summary": "All code definitions", "responses": {"200": {"description": "code tables"}}}
        },
        "/vsdc/code/selectCodes": {
            "post": {"summary": "Common code list", "responses": {"200": {"description": "cdsList"}}}
        },
        "/vsdc/itemClass/selectItemsClass": {
            "post": {"summary": "Item classification list", "responses": {"200": {"description": "itemClsList"}}}
        },
        "/vsdc/customers/selectCustomer": {
            "post": {"summary": "Customer list", "responses": {"200": {"description": "custList"}}}
        },
        "/vsdc/branches/selectBranches": {
            "post": {"summary": "Branch list", "responses": {"200": {"description": "bhfList"}}}
        },
        "/vsdc/items/selectItems": {
            "post": {"summary": "Items registered under a TIN", "responses": {"200": {"description": "itemList"}}}
        },
        "/vsdc/sync-item/{itemCd}": {
            "post": {
                "summary": "Send an item to EBM",
                "parameters": [{"in": "path", "name": "itemCd", "required": true, "type": "string"}],
                "responses": {
                    "200": {"description": "synced"},
                    "404": {"description": "item not found"},
                    "500": {"description": "EBM rejected the item"}
                }
            }
        },
        "/vsdc/generate-item-code": {
            "post": {
                "summary": "Generate an item code",
                "parameters": [{"in": "body", "name": "parts", "required": true, "schema": {"$ref": "#/definitions/ItemCodeParts"}}],
                "responses": {
                    "200": {"description": "itemCode and format"},
                    "400": {"description": "malformed component"},
                    "429": {"description": "too many requests"}
                }
            }
        },
        "/vsdc/trnsSales/saveSales": {
            "post": {"summary": "Save a sale and issue its receipt", "responses": {"200": {"description": "receipt data"}}}
        },
        "/vsdc/last-invoice/{tin}": {
            "get": {
                "summary": "Latest sale numbers for a TIN",
                "parameters": [{"in": "path", "name": "tin", "required": true, "type": "string"}],
                "responses": {"200": {"description": "lastSaleInvcNo and lastSaleRcptNo"}}
            }
        },
        "/vsdc/stock/saveStockItems": {
            "post": {"summary": "Save a stock movement", "responses": {"200": {"description": "saved"}}}
        },
        "/vsdc/stockMaster/saveStockMaster": {
            "post": {"summary": "Save a stock master quantity", "responses": {"200": {"description": "saved"}}}
        }
    },
    "definitions": {
        "Envelope": {
            "type": "object",
            "properties": {
                "resultCd": {"type": "string", "example": "000"},
                "resultMsg": {"type": "string"},
                "resultDt": {"type": "string", "example": "20250301083000"},
                "data": {"type": "object"}
            }
        },
        "ItemCodeParts": {
            "type": "object",
            "properties": {
                "orgnNatCd": {"type": "string", "example": "RW"},
                "itemTyCd": {"type": "string", "example": "2"},
                "pkgUnitCd": {"type": "string", "example": "NT"},
                "qtyUnitCd": {"type": "string", "example": "U"},
                "sequence": {"type": "string", "example": "0000012"}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0.4",
	Host:             "",
	BasePath:         "/api",
	Schemes:          []string{},
	Title:            "VSDC Backend API",
	Description:      "Gateway between the school-feeding POS and the EBM VSDC service.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
