package obs

import "testing"

func TestCanonicalPath(t *testing.T) {
	cases := map[string]string{
		"":                         "/",
		"/metrics":                 "/metrics",
		"/v1/users":                "/v1/users",
		"/v1/users/42":             "/v1/users/:id",
		"/v1/users/42/extra":       "/v1/users/42/extra",
		"/v1/timesheets/17":        "/v1/timesheets/:id",
		"/v1/timesheets?limit=10":  "/v1/timesheets",
		"/v1/auth/login":           "/v1/auth/login",
		"/v1/users/42?fields=role": "/v1/users/:id",
	}
	for input, expected := range cases {
		if got := CanonicalPath(input); got != expected {
			t.Fatalf("CanonicalPath(%q)=%q, want %q", input, got, expected)
		}
	}
}
