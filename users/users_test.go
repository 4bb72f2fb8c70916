package users

import (
	"testing"
)

func TestRegisterPayloadValidate(t *testing.T) {
	valid := registerPayload{
		Email:     "alice@example.com",
		Username:  "alice",
		FirstName: "Alice",
		LastName:  "Liddell",
		Password:  "wonderland1",
	}

	tests := []struct {
		name       string
		mutate     func(p *registerPayload)
		wantFields []string
	}{
		{"valid", func(p *registerPayload) {}, nil},
		{"missing email", func(p *registerPayload) { p.Email = "" }, []string{"email"}},
		{"email without at sign", func(p *registerPayload) { p.Email = "alice.example.com" }, []string{"email"}},
		{"missing username", func(p *registerPayload) { p.Username = "" }, []string{"username"}},
		{"reserved username", func(p *registerPayload) { p.Username = "me" }, []string{"username"}},
		{"reserved username mixed case", func(p *registerPayload) { p.Username = "Me" }, []string{"username"}},
		{"username with spaces", func(p *registerPayload) { p.Username = "al ice" }, []string{"username"}},
		{"missing first name", func(p *registerPayload) { p.FirstName = "" }, []string{"first_name"}},
		{"missing last name", func(p *registerPayload) { p.LastName = "" }, []string{"last_name"}},
		{"short password", func(p *registerPayload) { p.Password = "short" }, []string{"password"}},
		{"everything missing", func(p *registerPayload) { *p = registerPayload{} },
			[]string{"email", "username", "first_name", "last_name", "password"}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			p := valid
			tc.mutate(&p)
			errs := p.validate()
			if len(errs) != len(tc.wantFields) {
				t.Fatalf("validate() = %v, want errors on %v", errs, tc.wantFields)
			}
			for _, field := range tc.wantFields {
				if len(errs[field]) == 0 {
					t.Errorf("validate() missing error for %q: %v", field, errs)
				}
			}
		})
	}
}

func TestUsernameCharset(t *testing.T) {
	for _, name := range []string{"a.b", "a@b", "a+b", "a-b", "under_score"} {
		if !usernameRe.MatchString(name) {
			t.Errorf("usernameRe rejected %q", name)
		}
	}
	for _, name := range []string{"has space", "semi;colon", "slash/y"} {
		if usernameRe.MatchString(name) {
			t.Errorf("usernameRe accepted %q", name)
		}
	}
}
