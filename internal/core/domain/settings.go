package domain

// AdminConfig is the singleton record of business settings. The
// contact email decides the receipt hand-off channel.
type AdminConfig struct {
	ContactEmail string `json:"contact_email"`
	Tagline      string `json:"tagline"`
	SupportPhone string `json:"support_phone"`
	PaymentID    string `json:"payment_id"`
	City         string `json:"city"`
	ShippingNote string `json:"shipping_note"`
}

func DefaultAdminConfig() AdminConfig {
	return AdminConfig{
		ContactEmail: "orders@mirchico.example",
		Tagline:      "Small-batch spice blends, ground to order",
		SupportPhone: "+91 98220 00000",
		PaymentID:    "mirchico@upi",
		City:         "Nashik",
		ShippingNote: "Ships in 2-3 working days",
	}
}

// DefaultProducts seeds the catalog on first run or when the durable
// copy is empty.
func DefaultProducts() []Product {
	return []Product{
		{
			ID:          "guntur-chilli-powder",
			Name:        "Guntur Chilli Powder",
			Description: "Stone-ground sannam chillies with a clean, building heat.",
			UsageNotes:  "Half a teaspoon goes a long way in curries and chutneys.",
			Price:       180,
			Unit:        "100 g pouch",
			Heat:        HeatHot,
			Origin:      "Guntur, Andhra Pradesh",
			Signature:   true,
		},
		{
			ID:          "kashmiri-mirch",
			Name:        "Kashmiri Mirch",
			Description: "Deep red colour, gentle warmth. The tandoori staple.",
			Price:       160,
			Unit:        "100 g pouch",
			Heat:        HeatMild,
			Origin:      "Kashmir valley",
		},
		{
			ID:          "garam-masala",
			Name:        "Garam Masala",
			Description: "Whole spices roasted and ground in small batches every week.",
			UsageNotes:  "Finish dishes with it off the heat to keep the aroma.",
			Price:       220,
			Unit:        "75 g jar",
			Heat:        HeatMedium,
		},
		{
			ID:          "bhut-jolokia-flakes",
			Name:        "Bhut Jolokia Flakes",
			Description: "Sun-dried ghost pepper flakes. Handle with respect.",
			Price:       260,
			Unit:        "40 g jar",
			Heat:        HeatFiery,
			Origin:      "Tezpur, Assam",
			IsNew:       true,
		},
	}
}
