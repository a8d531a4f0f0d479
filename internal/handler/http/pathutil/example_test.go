package pathutil_test

import (
	"fmt"

	"resumen-backend/internal/handler/http/pathutil"
)

// ExampleNormalizePath shows how unknown paths collapse into one label.
func ExampleNormalizePath() {
	fmt.Println(pathutil.NormalizePath("/resumir"))
	fmt.Println(pathutil.NormalizePath("/resumir/"))
	fmt.Println(pathutil.NormalizePath("/.env"))
	fmt.Println(pathutil.NormalizePath("/admin/login"))

	// Output:
	// /resumir
	// /resumir
	// other
	// other
}
