package catalog

import "github.com/flight-board/airport-flight-board/internal/domain"

// DefaultAirportIATA is the airport selected on first run.
const DefaultAirportIATA = "SGN"

var airports = []domain.Airport{
	{IATA: "SGN", Name: "Tan Son Nhat International Airport", City: "Ho Chi Minh City", Country: "Vietnam", Timezone: "Asia/Ho_Chi_Minh", Latitude: 10.8188, Longitude: 106.6520},
	{IATA: "HAN", Name: "Noi Bai International Airport", City: "Hanoi", Country: "Vietnam", Timezone: "Asia/Ho_Chi_Minh", Latitude: 21.2212, Longitude: 105.8072},
	{IATA: "DAD", Name: "Da Nang International Airport", City: "Da Nang", Country: "Vietnam", Timezone: "Asia/Ho_Chi_Minh", Latitude: 16.0439, Longitude: 108.1994},
	{IATA: "CXR", Name: "Cam Ranh International Airport", City: "Nha Trang", Country: "Vietnam", Timezone: "Asia/Ho_Chi_Minh", Latitude: 11.9982, Longitude: 109.2194},
	{IATA: "PQC", Name: "Phu Quoc International Airport", City: "Phu Quoc", Country: "Vietnam", Timezone: "Asia/Ho_Chi_Minh", Latitude: 10.1698, Longitude: 103.9931},
	{IATA: "BKK", Name: "Suvarnabhumi Airport", City: "Bangkok", Country: "Thailand", Timezone: "Asia/Bangkok", Latitude: 13.6900, Longitude: 100.7501},
	{IATA: "DMK", Name: "Don Mueang International Airport", City: "Bangkok", Country: "Thailand", Timezone: "Asia/Bangkok", Latitude: 13.9126, Longitude: 100.6067},
	{IATA: "SIN", Name: "Singapore Changi Airport", City: "Singapore", Country: "Singapore", Timezone: "Asia/Singapore", Latitude: 1.3644, Longitude: 103.9915},
	{IATA: "KUL", Name: "Kuala Lumpur International Airport", City: "Kuala Lumpur", Country: "Malaysia", Timezone: "Asia/Kuala_Lumpur", Latitude: 2.7456, Longitude: 101.7099},
	{IATA: "CGK", Name: "Soekarno-Hatta International Airport", City: "Jakarta", Country: "Indonesia", Timezone: "Asia/Jakarta", Latitude: -6.1256, Longitude: 106.6559},
	{IATA: "DPS", Name: "Ngurah Rai International Airport", City: "Denpasar", Country: "Indonesia", Timezone: "Asia/Makassar", Latitude: -8.7482, Longitude: 115.1672},
	{IATA: "MNL", Name: "Ninoy Aquino International Airport", City: "Manila", Country: "Philippines", Timezone: "Asia/Manila", Latitude: 14.5086, Longitude: 121.0194},
	{IATA: "HKG", Name: "Hong Kong International Airport", City: "Hong Kong", Country: "Hong Kong", Timezone: "Asia/Hong_Kong", Latitude: 22.3080, Longitude: 113.9185},
	{IATA: "TPE", Name: "Taiwan Taoyuan International Airport", City: "Taipei", Country: "Taiwan", Timezone: "Asia/Taipei", Latitude: 25.0797, Longitude: 121.2342},
	{IATA: "PEK", Name: "Beijing Capital International Airport", City: "Beijing", Country: "China", Timezone: "Asia/Shanghai", Latitude: 40.0799, Longitude: 116.6031},
	{IATA: "PVG", Name: "Shanghai Pudong International Airport", City: "Shanghai", Country: "China", Timezone: "Asia/Shanghai", Latitude: 31.1443, Longitude: 121.8083},
	{IATA: "CAN", Name: "Guangzhou Baiyun International Airport", City: "Guangzhou", Country: "China", Timezone: "Asia/Shanghai", Latitude: 23.3924, Longitude: 113.2988},
	{IATA: "ICN", Name: "Incheon International Airport", City: "Seoul", Country: "South Korea", Timezone: "Asia/Seoul", Latitude: 37.4602, Longitude: 126.4407},
	{IATA: "NRT", Name: "Narita International Airport", City: "Tokyo", Country: "Japan", Timezone: "Asia/Tokyo", Latitude: 35.7720, Longitude: 140.3929},
	{IATA: "HND", Name: "Haneda Airport", City: "Tokyo", Country: "Japan", Timezone: "Asia/Tokyo", Latitude: 35.5494, Longitude: 139.7798},
	{IATA: "KIX", Name: "Kansai International Airport", City: "Osaka", Country: "Japan", Timezone: "Asia/Tokyo", Latitude: 34.4347, Longitude: 135.2440},
	{IATA: "DEL", Name: "Indira Gandhi International Airport", City: "New Delhi", Country: "India", Timezone: "Asia/Kolkata", Latitude: 28.5562, Longitude: 77.1000},
	{IATA: "BOM", Name: "Chhatrapati Shivaji Maharaj International Airport", City: "Mumbai", Country: "India", Timezone: "Asia/Kolkata", Latitude: 19.0896, Longitude: 72.8656},
	{IATA: "DXB", Name: "Dubai International Airport", City: "Dubai", Country: "United Arab Emirates", Timezone: "Asia/Dubai", Latitude: 25.2532, Longitude: 55.3657},
	{IATA: "DOH", Name: "Hamad International Airport", City: "Doha", Country: "Qatar", Timezone: "Asia/Qatar", Latitude: 25.2731, Longitude: 51.6081},
	{IATA: "SYD", Name: "Sydney Kingsford Smith Airport", City: "Sydney", Country: "Australia", Timezone: "Australia/Sydney", Latitude: -33.9399, Longitude: 151.1753},
	{IATA: "MEL", Name: "Melbourne Airport", City: "Melbourne", Country: "Australia", Timezone: "Australia/Melbourne", Latitude: -37.6690, Longitude: 144.8410},
	{IATA: "LHR", Name: "Heathrow Airport", City: "London", Country: "United Kingdom", Timezone: "Europe/London", Latitude: 51.4700, Longitude: -0.4543},
	{IATA: "CDG", Name: "Charles de Gaulle Airport", City: "Paris", Country: "France", Timezone: "Europe/Paris", Latitude: 49.0097, Longitude: 2.5479},
	{IATA: "FRA", Name: "Frankfurt Airport", City: "Frankfurt", Country: "Germany", Timezone: "Europe/Berlin", Latitude: 50.0379, Longitude: 8.5622},
	{IATA: "AMS", Name: "Amsterdam Airport Schiphol", City: "Amsterdam", Country: "Netherlands", Timezone: "Europe/Amsterdam", Latitude: 52.3105, Longitude: 4.7683},
	{IATA: "IST", Name: "Istanbul Airport", City: "Istanbul", Country: "Turkey", Timezone: "Europe/Istanbul", Latitude: 41.2753, Longitude: 28.7519},
	{IATA: "JFK", Name: "John F. Kennedy International Airport", City: "New York", Country: "United States", Timezone: "America/New_York", Latitude: 40.6413, Longitude: -73.7781},
	{IATA: "LAX", Name: "Los Angeles International Airport", City: "Los Angeles", Country: "United States", Timezone: "America/Los_Angeles", Latitude: 33.9416, Longitude: -118.4085},
	{IATA: "SFO", Name: "San Francisco International Airport", City: "San Francisco", Country: "United States", Timezone: "America/Los_Angeles", Latitude: 37.6213, Longitude: -122.3790},
	{IATA: "ORD", Name: "O'Hare International Airport", City: "Chicago", Country: "United States", Timezone: "America/Chicago", Latitude: 41.9742, Longitude: -87.9073},
	{IATA: "YYZ", Name: "Toronto Pearson International Airport", City: "Toronto", Country: "Canada", Timezone: "America/Toronto", Latitude: 43.6777, Longitude: -79.6248},
	{IATA: "GRU", Name: "Sao Paulo/Guarulhos International Airport", City: "Sao Paulo", Country: "Brazil", Timezone: "America/Sao_Paulo", Latitude: -23.4356, Longitude: -46.4731},
	{IATA: "YYT", Name: "St. John's International Airport", City: "St. John's", Country: "Canada", Timezone: "America/St_Johns", Latitude: 47.6186, Longitude: -52.7519},
	{IATA: "KEF", Name: "Keflavik International Airport", City: "Reykjavik", Country: "Iceland", Timezone: "Atlantic/Reykjavik", Latitude: 63.9850, Longitude: -22.6056},
}
