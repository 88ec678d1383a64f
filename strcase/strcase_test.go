package strcase

import "testing"

func TestPascalToSnake(t *testing.T) {
	tests := []struct{ in, want string }{
		{"PascalCase", "pascal_case"},
		{"HTTPServer", "http_server"},
		{"RenderPass2", "render_pass2"},
		{"Single", "single"},
		{"", ""},
	}
	for _, tc := range tests {
		if got := PascalToSnake(tc.in); got != tc.want {
			t.Errorf("PascalToSnake(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestCamelToSnake(t *testing.T) {
	tests := []struct{ in, want string }{
		{"camelCase", "camel_case"},
		{"getHTTPResponse", "get_http_response"},
		{"frame24Rate", "frame24_rate"},
		{"lower", "lower"},
	}
	for _, tc := range tests {
		if got := CamelToSnake(tc.in); got != tc.want {
			t.Errorf("CamelToSnake(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestPascalToCamel(t *testing.T) {
	tests := []struct{ in, want string }{
		{"PascalCase", "pascalCase"},
		{"X", "x"},
		{"", ""},
	}
	for _, tc := range tests {
		if got := PascalToCamel(tc.in); got != tc.want {
			t.Errorf("PascalToCamel(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestCamelToPascal(t *testing.T) {
	tests := []struct{ in, want string }{
		{"camelCase", "CamelCase"},
		{"x", "X"},
		{"", ""},
	}
	for _, tc := range tests {
		if got := CamelToPascal(tc.in); got != tc.want {
			t.Errorf("CamelToPascal(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestSnakeToPascal(t *testing.T) {
	tests := []struct{ in, want string }{
		{"snake_case", "SnakeCase"},
		{"multi_word_name", "MultiWordName"},
		{"__leading_and__double", "LeadingAndDouble"},
		{"single", "Single"},
		{"", ""},
	}
	for _, tc := range tests {
		if got := SnakeToPascal(tc.in); got != tc.want {
			t.Errorf("SnakeToPascal(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestSnakeToCamel(t *testing.T) {
	tests := []struct{ in, want string }{
		{"snake_case", "snakeCase"},
		{"multi_word_name", "multiWordName"},
		{"single", "single"},
		{"", ""},
	}
	for _, tc := range tests {
		if got := SnakeToCamel(tc.in); got != tc.want {
			t.Errorf("SnakeToCamel(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestFileVersion(t *testing.T) {
	tests := []struct{ in, want string }{
		{"GhostA_anim_v001.ma", "001"},
		{"shot_v42.exr", "42"},
		{"scene_v000123.mb", "000123"},
		{"no_version.ma", ""},
		{"almost_v1", ""}, // no extension after the version
		{"", ""},
	}
	for _, tc := range tests {
		if got := FileVersion(tc.in); got != tc.want {
			t.Errorf("FileVersion(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestIsPathLike(t *testing.T) {
	tests := []struct {
		in   string
		want bool
	}{
		{`C:\projects\show`, true},
		{`d:/assets`, true},
		{`\\server\share`, true},
		{`.\relative`, true},
		{`..\up\one`, true},
		{"posix/style/path", true},
		{"file.txt", true},
		{"archive.tar.gz", true},
		{"just a sentence", false},
		{"identifier", false},
		{"", false},
	}
	for _, tc := range tests {
		if got := IsPathLike(tc.in); got != tc.want {
			t.Errorf("IsPathLike(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}
}
