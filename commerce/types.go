package commerce

// Wire shapes returned by the vendor storefront API. Amounts stay
// string-encoded exactly as the vendor sends them; translation into display
// records happens in the catalog package.

type Money struct {
	Amount       string `mapstructure:"amount"`
	CurrencyCode string `mapstructure:"currencyCode"`
}

type Image struct {
	Src     string `mapstructure:"src"`
	AltText string `mapstructure:"altText"`
}

type Variant struct {
	ID             string `mapstructure:"id"`
	Title          string `mapstructure:"title"`
	Price          Money  `mapstructure:"price"`
	CompareAtPrice *Money `mapstructure:"compareAtPrice"`
	Available      bool   `mapstructure:"availableForSale"`
}

type Product struct {
	ID          string    `mapstructure:"id"`
	Title       string    `mapstructure:"title"`
	Description string    `mapstructure:"description"`
	Handle      string    `mapstructure:"handle"`
	Images      []Image   `mapstructure:"images"`
	Variants    []Variant `mapstructure:"variants"`
	Tags        []string  `mapstructure:"tags"`
	ProductType string    `mapstructure:"productType"`
	Vendor      string    `mapstructure:"vendor"`
}

type LineProduct struct {
	ID     string  `mapstructure:"id"`
	Title  string  `mapstructure:"title"`
	Handle string  `mapstructure:"handle"`
	Images []Image `mapstructure:"images"`
}

type LineItem struct {
	ID       string `mapstructure:"id"`
	Quantity int    `mapstructure:"quantity"`
	Variant  struct {
		ID      string      `mapstructure:"id"`
		Title   string      `mapstructure:"title"`
		Price   Money       `mapstructure:"price"`
		Product LineProduct `mapstructure:"product"`
	} `mapstructure:"variant"`
}

type Cart struct {
	ID            string     `mapstructure:"id"`
	WebURL        string     `mapstructure:"webUrl"`
	LineItems     []LineItem `mapstructure:"lineItems"`
	SubtotalPrice Money      `mapstructure:"subtotalPrice"`
	TotalPrice    Money      `mapstructure:"totalPrice"`
}
