package entity

type InfoBlock struct {
	Title       string `json:"title"`
	Content     string `json:"content"`
	Description string `json:"description"`
}

func ContactInfo() []InfoBlock {
	return []InfoBlock{
		{Title: "Visit Us", Content: "1604 Bali Indonesia", Description: "Nestled in the heart of Bali's community"},
		{Title: "Call Us", Content: "(503) 482-1234", Description: "For orders and inquiries"},
		{Title: "Email Us", Content: "hello@aprilandbutter.com", Description: "We respond within 24 hours"},
		{Title: "Hours", Content: "Monday - Friday: 7AM - 7PM", Description: "Saturday - Sunday: 8AM - 6PM"},
	}
}

type BakeryValue struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

func AboutValues() []BakeryValue {
	return []BakeryValue{
		{Title: "Fresh Daily", Description: "Made every morning with care and attention to detail"},
		{Title: "Wholesome Ingredients", Description: "Organic and local ingredients whenever possible"},
		{Title: "Cozy Atmosphere", Description: "A peaceful space for calm and connection"},
		{Title: "Handcrafted Love", Description: "Every item made with thoughtful attention and care"},
	}
}
