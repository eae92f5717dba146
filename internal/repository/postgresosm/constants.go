package postgresosm

const (
	SRID4326 = 4326

	// LimitNearbyFeatures - верхняя граница числа объектов в ответе
	LimitNearbyFeatures = 1000
)

const (
	planetPointTable   = "planet_osm_point"
	planetLineTable    = "planet_osm_line"
	planetPolygonTable = "planet_osm_polygon"
)

// Классы объектов, совпадающие с запросом к Overpass
var (
	majorHighwayClasses = []string{"motorway", "trunk", "primary", "secondary"}
	keyAmenityTypes     = []string{"restaurant", "cafe", "shop", "bank", "hospital"}
	naturalLandmarks    = []string{"peak", "volcano", "beach", "cliff", "water"}
)
