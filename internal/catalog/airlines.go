package catalog

import "github.com/flight-board/airport-flight-board/internal/domain"

var airlines = []domain.Airline{
	{Code: "VN", Name: "Vietnam Airlines"},
	{Code: "VJ", Name: "VietJet Air"},
	{Code: "BL", Name: "Pacific Airlines"},
	{Code: "QH", Name: "Bamboo Airways"},
	{Code: "SQ", Name: "Singapore Airlines"},
	{Code: "TG", Name: "Thai Airways"},
	{Code: "MH", Name: "Malaysia Airlines"},
	{Code: "CX", Name: "Cathay Pacific"},
	{Code: "KE", Name: "Korean Air"},
	{Code: "OZ", Name: "Asiana Airlines"},
	{Code: "NH", Name: "All Nippon Airways"},
	{Code: "JL", Name: "Japan Airlines"},
	{Code: "BR", Name: "EVA Air"},
	{Code: "CI", Name: "China Airlines"},
	{Code: "PR", Name: "Philippine Airlines"},
	{Code: "5J", Name: "Cebu Pacific"},
	{Code: "GA", Name: "Garuda Indonesia"},
	{Code: "QF", Name: "Qantas"},
	{Code: "EK", Name: "Emirates"},
	{Code: "QR", Name: "Qatar Airways"},
	{Code: "EY", Name: "Etihad Airways"},
	{Code: "CA", Name: "Air China"},
	{Code: "CZ", Name: "China Southern Airlines"},
	{Code: "MU", Name: "China Eastern Airlines"},
	{Code: "BA", Name: "British Airways"},
	{Code: "AF", Name: "Air France"},
	{Code: "LH", Name: "Lufthansa"},
	{Code: "KL", Name: "KLM Royal Dutch Airlines"},
	{Code: "AA", Name: "American Airlines"},
	{Code: "UA", Name: "United Airlines"},
	{Code: "DL", Name: "Delta Air Lines"},
	{Code: "AK", Name: "AirAsia"},
	{Code: "D7", Name: "AirAsia X"},
	{Code: "FD", Name: "Thai AirAsia"},
	{Code: "3K", Name: "Jetstar Asia"},
}
