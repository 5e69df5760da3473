package utils

import "testing"

func TestPageCount(t *testing.T) {
	// 12 records at 5 per page need 3 pages
	if pages := PageCount(12, 5); pages != 3 {
		t.Errorf("expected 3 pages, got %d", pages)
	}

	if pages := PageCount(10, 5); pages != 2 {
		t.Errorf("expected 2 pages, got %d", pages)
	}

	if pages := PageCount(0, 10); pages != 0 {
		t.Errorf("expected 0 pages for empty collection, got %d", pages)
	}

	if pages := PageCount(1, 10); pages != 1 {
		t.Errorf("expected 1 page, got %d", pages)
	}
}

func TestNormalizeLimit(t *testing.T) {
	if limit := NormalizeLimit(25); limit != 25 {
		t.Errorf("expected 25 unchanged, got %d", limit)
	}

	if limit := NormalizeLimit(0); limit != 10 {
		t.Errorf("expected default 10, got %d", limit)
	}

	if limit := NormalizeLimit(-5); limit != 10 {
		t.Errorf("negative limit should fall back to the default, got %d", limit)
	}

	if limit := NormalizeLimit(10000); limit != MaxLimit {
		t.Errorf("oversized limit should be capped at %d, got %d", MaxLimit, limit)
	}

	if limit := NormalizeLimit(MaxLimit); limit != MaxLimit {
		t.Errorf("expected %d unchanged, got %d", MaxLimit, limit)
	}
}

func TestNormalizePage(t *testing.T) {
	page, limit := NormalizePage(0, 0)
	if page != 1 || limit != 10 {
		t.Errorf("expected defaults 1 and 10, got %d and %d", page, limit)
	}

	page, limit = NormalizePage(2, 5)
	if page != 2 || limit != 5 {
		t.Errorf("expected 2 and 5 unchanged, got %d and %d", page, limit)
	}

	page, limit = NormalizePage(-3, -1)
	if page != 1 || limit != 10 {
		t.Errorf("negative values should fall back to defaults, got %d and %d", page, limit)
	}
}
