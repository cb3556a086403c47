package catalog

// SampleProducts is the built-in fallback catalog served when the remote
// commerce API is unreachable, so the page stays usable in a degraded state.
func SampleProducts() []Product {
	return []Product{
		{
			ID:            "sample-1",
			Handle:        "oculos-de-sol-aviador-classico",
			Name:          "Óculos de Sol Aviador Clássico",
			Description:   "Óculos de sol aviador com lentes polarizadas e proteção UV 100%. Design atemporal e elegante.",
			Price:         299.90,
			SalePrice:     199.90,
			ImageURL:      "/media/sample-aviador.jpg",
			Category:      "sunglasses",
			Brand:         defaultBrand,
			StockCount:    15,
			Featured:      true,
			FrameMaterial: "Metal",
			LensType:      "Polarizada",
			FrameShape:    "Aviador",
			Gender:        defaultGender,
		},
		{
			ID:            "sample-2",
			Handle:        "oculos-de-grau-feminino-cat-eye",
			Name:          "Óculos de Grau Feminino Cat Eye",
			Description:   "Armação feminina em acetato com formato cat eye moderno. Ideal para uso diário.",
			Price:         189.90,
			ImageURL:      "/media/sample-cat-eye.jpg",
			Category:      "prescription",
			Brand:         defaultBrand,
			StockCount:    8,
			FrameMaterial: defaultMaterial,
			LensType:      defaultLensType,
			FrameShape:    "Cat Eye",
			Gender:        "Feminino",
		},
		{
			ID:            "sample-3",
			Handle:        "oculos-esportivo-masculino",
			Name:          "Óculos Esportivo Masculino",
			Description:   "Óculos esportivo com armação resistente e lentes antirreflexo. Perfeito para atividades físicas.",
			Price:         159.90,
			ImageURL:      "/media/sample-esportivo.jpg",
			Category:      "sport",
			Brand:         defaultBrand,
			StockCount:    12,
			Featured:      true,
			FrameMaterial: "TR90",
			LensType:      defaultLensType,
			FrameShape:    defaultShape,
			Gender:        "Masculino",
		},
	}
}
