package service

import "github.com/matiascayunao/pvsa-p/internal/repository"

// typicalSeeds maps a room type name to the ordered (category, kind) pairs
// expected in rooms of that type. Entry order becomes the sort order on
// first seed.
var typicalSeeds = map[string][]repository.SeedEntry{
	"Baño": {
		{CategoryName: "Infraestructura", KindName: "Paredes"},
		{CategoryName: "Infraestructura", KindName: "Piso"},
		{CategoryName: "Infraestructura", KindName: "Cielo"},
		{CategoryName: "Infraestructura", KindName: "Techo"},
		{CategoryName: "Infraestructura", KindName: "Luces"},
		{CategoryName: "Infraestructura", KindName: "Ventanas"},
		{CategoryName: "Infraestructura", KindName: "Puertas"},
		{CategoryName: "Infraestructura", KindName: "Conexión eléctrica"},
		{CategoryName: "Infraestructura", KindName: "Interruptores"},
		{CategoryName: "Sanitario", KindName: "Tasas"},
		{CategoryName: "Sanitario", KindName: "Urinario"},
		{CategoryName: "Sanitario", KindName: "Desagües"},
		{CategoryName: "Sanitario", KindName: "Papeleros"},
		{CategoryName: "Sanitario", KindName: "Lavamanos"},
		{CategoryName: "Decoración", KindName: "Espejos"},
		{CategoryName: "Higiene", KindName: "Jaboneras"},
		{CategoryName: "Higiene", KindName: "Dispensadores de papel"},
		{CategoryName: "Higiene", KindName: "Dispensadores de jabón"},
	},
	"Vestidor": {
		{CategoryName: "Infraestructura", KindName: "Paredes"},
		{CategoryName: "Infraestructura", KindName: "Piso"},
		{CategoryName: "Infraestructura", KindName: "Cielo"},
		{CategoryName: "Infraestructura", KindName: "Techo"},
		{CategoryName: "Infraestructura", KindName: "Luces"},
		{CategoryName: "Infraestructura", KindName: "Ventanas"},
		{CategoryName: "Infraestructura", KindName: "Puertas"},
		{CategoryName: "Infraestructura", KindName: "Conexión eléctrica"},
		{CategoryName: "Infraestructura", KindName: "Interruptores"},
		{CategoryName: "Mobiliario", KindName: "Bancos"},
		{CategoryName: "Mobiliario", KindName: "Casilleros"},
		{CategoryName: "Mobiliario", KindName: "Percheros"},
		{CategoryName: "Sanitario", KindName: "Duchas"},
		{CategoryName: "Higiene", KindName: "Secadores de toalla"},
		{CategoryName: "Higiene", KindName: "Dispensadores de jabón"},
		{CategoryName: "Climatización", KindName: "Extractores"},
		{CategoryName: "Climatización", KindName: "Estufas"},
	},
	"Comedor": {
		{CategoryName: "Infraestructura", KindName: "Paredes"},
		{CategoryName: "Infraestructura", KindName: "Piso"},
		{CategoryName: "Infraestructura", KindName: "Cielo"},
		{CategoryName: "Infraestructura", KindName: "Techo"},
		{CategoryName: "Infraestructura", KindName: "Luces"},
		{CategoryName: "Infraestructura", KindName: "Ventanas"},
		{CategoryName: "Infraestructura", KindName: "Puertas"},
		{CategoryName: "Infraestructura", KindName: "Conexión eléctrica"},
		{CategoryName: "Infraestructura", KindName: "Interruptores"},
		{CategoryName: "Mobiliario", KindName: "Mesas"},
		{CategoryName: "Mobiliario", KindName: "Sillas"},
		{CategoryName: "Mobiliario", KindName: "Muebles"},
		{CategoryName: "Electrodomésticos", KindName: "Refrigerador"},
		{CategoryName: "Electrodomésticos", KindName: "Microondas"},
		{CategoryName: "Electrodomésticos", KindName: "Dispensador de agua"},
		{CategoryName: "Electrodomésticos", KindName: "Televisor"},
		{CategoryName: "Sanitario", KindName: "Lavaplatos"},
		{CategoryName: "Sanitario", KindName: "Papeleros"},
		{CategoryName: "Climatización", KindName: "Aire acondicionado"},
	},
	"Cafetería": {
		{CategoryName: "Infraestructura", KindName: "Paredes"},
		{CategoryName: "Infraestructura", KindName: "Piso"},
		{CategoryName: "Infraestructura", KindName: "Cielo"},
		{CategoryName: "Infraestructura", KindName: "Techo"},
		{CategoryName: "Infraestructura", KindName: "Luces"},
		{CategoryName: "Infraestructura", KindName: "Ventanas"},
		{CategoryName: "Infraestructura", KindName: "Puertas"},
		{CategoryName: "Infraestructura", KindName: "Conexión eléctrica"},
		{CategoryName: "Infraestructura", KindName: "Interruptores"},
		{CategoryName: "Mobiliario", KindName: "Mesas"},
		{CategoryName: "Mobiliario", KindName: "Sillas"},
		{CategoryName: "Mobiliario", KindName: "Muebles"},
		{CategoryName: "Electrodomésticos", KindName: "Cafetera"},
		{CategoryName: "Electrodomésticos", KindName: "Refrigerador"},
		{CategoryName: "Electrodomésticos", KindName: "Dispensador de agua"},
		{CategoryName: "Climatización", KindName: "Aire acondicionado"},
	},
	"Baño vestidor": {
		{CategoryName: "Infraestructura", KindName: "Paredes"},
		{CategoryName: "Infraestructura", KindName: "Piso"},
		{CategoryName: "Infraestructura", KindName: "Cielo"},
		{CategoryName: "Infraestructura", KindName: "Techo"},
		{CategoryName: "Infraestructura", KindName: "Luces"},
		{CategoryName: "Infraestructura", KindName: "Ventanas"},
		{CategoryName: "Infraestructura", KindName: "Puertas"},
		{CategoryName: "Infraestructura", KindName: "Conexión eléctrica"},
		{CategoryName: "Infraestructura", KindName: "Interruptores"},
		{CategoryName: "Sanitario", KindName: "Tasas"},
		{CategoryName: "Sanitario", KindName: "Urinario"},
		{CategoryName: "Sanitario", KindName: "Desagües"},
		{CategoryName: "Sanitario", KindName: "Lavamanos"},
		{CategoryName: "Sanitario", KindName: "Duchas"},
		{CategoryName: "Sanitario", KindName: "Papeleros"},
		{CategoryName: "Decoración", KindName: "Espejos"},
		{CategoryName: "Higiene", KindName: "Secadores de toalla"},
		{CategoryName: "Higiene", KindName: "Dispensadores de jabón"},
		{CategoryName: "Mobiliario", KindName: "Bancas"},
		{CategoryName: "Mobiliario", KindName: "Casilleros"},
		{CategoryName: "Climatización", KindName: "Extractores"},
	},
}
