package gallery

import (
	"testing"
)

func strPtr(s string) *string { return &s }
func intPtr(n int) *int       { return &n }

func TestBuildGalleryUpdateCaptionOnly(t *testing.T) {
	update := buildGalleryUpdate(galleryUpdateForm{Caption: strPtr("Sunset at Varkala")})

	if len(update) != 1 {
		t.Fatalf("update = %v, want caption only", update)
	}
	if update["caption"] != "Sunset at Varkala" {
		t.Errorf("caption = %v", update["caption"])
	}
	// Absent fields stay untouched: a caption edit must not clear the
	// destination or push the item to the front of the display order.
	for _, key := range []string{"destination", "order", "url", "category"} {
		if _, ok := update[key]; ok {
			t.Errorf("%s written without being in the body", key)
		}
	}
}

func TestBuildGalleryUpdateExplicitValues(t *testing.T) {
	update := buildGalleryUpdate(galleryUpdateForm{
		URL:         strPtr("  /uploads/beach.jpg "),
		Category:    strPtr("beaches"),
		Caption:     strPtr(""),
		Destination: strPtr(""),
		Order:       intPtr(0),
	})

	if update["url"] != "/uploads/beach.jpg" {
		t.Errorf("url = %v, want trimmed path", update["url"])
	}
	if update["category"] != "beaches" {
		t.Errorf("category = %v", update["category"])
	}
	// Empty strings clear caption and destination when sent explicitly.
	if v, ok := update["caption"]; !ok || v != "" {
		t.Errorf("caption = %v (present %v), want explicit clear", v, ok)
	}
	if v, ok := update["destination"]; !ok || v != "" {
		t.Errorf("destination = %v (present %v), want explicit clear", v, ok)
	}
	// Zero is a legal slot, distinct from the field being absent.
	if v, ok := update["order"]; !ok || v != 0 {
		t.Errorf("order = %v (present %v), want 0", v, ok)
	}
}

func TestBuildGalleryUpdateIgnoresBlankRequiredFields(t *testing.T) {
	update := buildGalleryUpdate(galleryUpdateForm{
		URL:      strPtr("   "),
		Category: strPtr(""),
	})

	if len(update) != 0 {
		t.Fatalf("update = %v, want empty: url and category cannot be blanked", update)
	}
}

func TestBuildGalleryUpdateEmptyBody(t *testing.T) {
	if update := buildGalleryUpdate(galleryUpdateForm{}); len(update) != 0 {
		t.Fatalf("update = %v, want empty for an empty body", update)
	}
}
