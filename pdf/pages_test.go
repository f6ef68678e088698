package pdf

import (
	"errors"
	"testing"
)

func TestCheckPages(t *testing.T) {
	t.Parallel()

	var tests = []struct {
		name      string
		count     int
		pages     []int
		wantPage  int
		wantPages int
	}{
		{name: "all valid", count: 3, pages: []int{1, 2, 3}},
		{name: "empty", count: 3, pages: nil},
		{name: "past the end", count: 2, pages: []int{1, 99}, wantPage: 99, wantPages: 2},
		{name: "zero", count: 2, pages: []int{0}, wantPage: 0, wantPages: 2},
		{name: "negative", count: 2, pages: []int{-1}, wantPage: -1, wantPages: 2},
		{name: "empty document", count: 0, pages: []int{1}, wantPage: 1, wantPages: 0},
	}

	for _, test := range tests {
		test := test

		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			err := CheckPages(test.count, test.pages...)

			if test.wantPages == 0 && test.wantPage == 0 {
				if err != nil {
					t.Fatal(err)
				}

				return
			}

			var pageErr *PageError
			if !errors.As(err, &pageErr) {
				t.Fatalf("want *PageError, got %v", err)
			}

			if pageErr.Page != test.wantPage {
				t.Errorf("wrong page, want %d, got %d", test.wantPage, pageErr.Page)
			}

			if pageErr.Pages != test.wantPages {
				t.Errorf("wrong page count, want %d, got %d", test.wantPages, pageErr.Pages)
			}
		})
	}
}
