package catalog

import (
	"testing"

	"github.com/oticaisis/storefront/commerce"
)

func remoteFixture() commerce.Product {
	compare := commerce.Money{Amount: "299.90", CurrencyCode: "BRL"}
	return commerce.Product{
		ID:          "gid://product/1",
		Title:       "Aviador Clássico",
		Description: "Lentes polarizadas",
		Handle:      "aviador-classico",
		Images:      []commerce.Image{{Src: "https://cdn.example/aviador.jpg"}},
		Variants: []commerce.Variant{
			{
				ID:             "gid://variant/1",
				Price:          commerce.Money{Amount: "199.90", CurrencyCode: "BRL"},
				CompareAtPrice: &compare,
				Available:      true,
			},
		},
		Tags:        []string{"featured", "material:Metal", "lens:Polarizada", "shape:Aviador", "gender:Unissex"},
		ProductType: "sunglasses",
		Vendor:      "Ótica Isis",
	}
}

func TestTranslate_SalePriceFromCompareAt(t *testing.T) {
	p := Translate(remoteFixture(), "/media/fallback.jpg")

	if p.Price != 299.90 {
		t.Errorf("Price = %v, want 299.90 (compare-at is the list price)", p.Price)
	}
	if p.SalePrice != 199.90 {
		t.Errorf("SalePrice = %v, want 199.90", p.SalePrice)
	}
	if !p.OnSale() {
		t.Error("OnSale() = false, want true")
	}
	if p.EffectivePrice() != 199.90 {
		t.Errorf("EffectivePrice() = %v, want 199.90", p.EffectivePrice())
	}
}

func TestTranslate_TagAttributes(t *testing.T) {
	p := Translate(remoteFixture(), "/media/fallback.jpg")

	if p.FrameMaterial != "Metal" {
		t.Errorf("FrameMaterial = %q, want Metal", p.FrameMaterial)
	}
	if p.LensType != "Polarizada" {
		t.Errorf("LensType = %q, want Polarizada", p.LensType)
	}
	if p.FrameShape != "Aviador" {
		t.Errorf("FrameShape = %q, want Aviador", p.FrameShape)
	}
	if !p.Featured {
		t.Error("Featured = false, want true")
	}
}

func TestTranslate_DefaultsWhenTagsMissing(t *testing.T) {
	remote := remoteFixture()
	remote.Tags = nil
	remote.Images = nil
	p := Translate(remote, "/media/fallback.jpg")

	if p.FrameMaterial != "Acetato" {
		t.Errorf("FrameMaterial = %q, want Acetato", p.FrameMaterial)
	}
	if p.Gender != "Unissex" {
		t.Errorf("Gender = %q, want Unissex", p.Gender)
	}
	if p.ImageURL != "/media/fallback.jpg" {
		t.Errorf("ImageURL = %q, want the fallback image", p.ImageURL)
	}
}

func TestTranslate_NoAvailableVariant(t *testing.T) {
	remote := remoteFixture()
	remote.Variants[0].Available = false
	p := Translate(remote, "/media/fallback.jpg")

	if p.VariantID != "" {
		t.Errorf("VariantID = %q, want empty for unsellable product", p.VariantID)
	}
	if p.InStock() {
		t.Error("InStock() = true, want false")
	}
}

func TestEffectivePrice_IgnoresHigherSalePrice(t *testing.T) {
	p := Product{Price: 100, SalePrice: 150}
	if p.EffectivePrice() != 100 {
		t.Errorf("EffectivePrice() = %v, want 100 when sale price is higher", p.EffectivePrice())
	}
	if p.OnSale() {
		t.Error("OnSale() = true, want false when sale price is higher")
	}
}
