package fuzztests

import (
	"io/fs"
	"os"
	"path/filepath"
	"testing"
)

const (
	maxSeedBytes = 64 << 10 // ограничение для тестового корпуса
	maxFuzzInput = 16 << 10
)

var languageSeeds = []string{
	``,
	`print("hello")`,
	`let a = 1`,
	"loop { if a == 1 { break } else { print(a) } }",
	`fn main() { print(1) }`,
	`url |> spider.get() |> html.select("h1")`,
	`x |> db.query("select 1")`,
	`json.get(json.parse(s), "k")[0]`,
	`[1, 2, 3][1]`,
	`"a" + "b" + c`,
	`leak()`,
	`print(r#"not raw"#)`,
	`"unterminated`,
	`let = 1`,
	`((((((((((1))))))))))`,
	"// only a comment\n",
	"\ufeffprint(1)\r\n",
	"print(\"a\rb\")",
	"print(\"x\xc3(\")",
	"print(\"héllo wörld\") =",
}

func addCorpusSeeds(f *testing.F) {
	for _, s := range languageSeeds {
		f.Add([]byte(s))
	}
	addTestdataSeeds(f)
}

// addTestdataSeeds adds the .zn programs used by the driver golden tests.
func addTestdataSeeds(f *testing.F) {
	root := filepath.Join("..", "driver", "testdata")
	if _, err := os.Stat(root); err != nil {
		return
	}
	_ = filepath.WalkDir(root, func(path string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil || d.IsDir() || filepath.Ext(path) != ".zn" {
			return nil
		}
		// #nosec G304 -- path comes from repository testdata walk
		src, err := os.ReadFile(path)
		if err != nil {
			return nil
		}
		f.Add(clampSeed(src))
		return nil
	})
}

func clampSeed(src []byte) []byte {
	if len(src) > maxSeedBytes {
		src = src[:maxSeedBytes]
	}
	return append([]byte(nil), src...)
}
