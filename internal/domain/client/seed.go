package client

// Seed returns the demo client list.
func Seed() []Client {
	return []Client{
		{ID: "1", Name: "Acme Corporation", Email: "contact@acme.com", Phone: "555-1234", Status: StatusActive, Type: "Enterprise",
			Address: "123 Main St, City", Notes: "Important client with multiple projects."},
		{ID: "2", Name: "Stark Industries", Email: "info@stark.com", Phone: "555-5678", Status: StatusActive, Type: "Enterprise",
			Address: "456 Tech Blvd, Metropolis", Notes: "High priority client."},
		{ID: "3", Name: "Wayne Enterprises", Email: "bruce@wayne.com", Phone: "555-9012", Status: StatusInactive, Type: "Enterprise",
			Address: "789 Bat Ave, Gotham", Notes: "Currently on hold."},
		{ID: "4", Name: "Pied Piper", Email: "richard@piedpiper.com", Phone: "555-3456", Status: StatusActive, Type: "Startup",
			Address: "101 Silicon Valley", Notes: "Tech startup with compression algorithm."},
		{ID: "5", Name: "Los Pollos Hermanos", Email: "gus@lph.com", Phone: "555-7890", Status: StatusActive, Type: "Small Business",
			Address: "234 Albuquerque Rd", Notes: "Restaurant chain."},
	}
}
