package catalog

import "github.com/i474232898/weather-flight/internal/weather"

var defaultDestinations = []weather.Destination{
	{Name: "Salsipuedes", Region: "B.C., México", Coordinate: weather.Coordinate{Latitude: 28.72611, Longitude: -112.95527}},
	{Name: "Válgame Dios", Region: "Sinaloa, México", Coordinate: weather.Coordinate{Latitude: 25.54621, Longitude: -107.38681}},
	{Name: "Xbox", Region: "Yucatán, México", Coordinate: weather.Coordinate{Latitude: 20.20388, Longitude: -89.38681}},
	{Name: "Naco", Region: "Sonora, México", Coordinate: weather.Coordinate{Latitude: 31.33166, Longitude: -109.94805}},
	{Name: "Berga", Region: "Cataluña, España", Coordinate: weather.Coordinate{Latitude: 42.10000, Longitude: 1.84555}},
}
