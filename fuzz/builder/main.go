// Copyright 2022 CloudWeGo Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strconv"

	gofakeit "github.com/brianvoe/gofakeit/v6"

	"github.com/cloudwego/dectext"
)

var (
	OutputDir  string
	Seed       int64
	MaxFileNum int64
)

func init() {
	flag.StringVar(&OutputDir, "out", "testdata/fuzz", "output directory")
	flag.Int64Var(&Seed, "seed", 0, "random seed, 0 picks a random one")
	flag.Int64Var(&MaxFileNum, "max-file-num", 256, "max number of files to generate per target")
}

func checkArgs() {
	if OutputDir == "" || MaxFileNum <= 0 {
		flag.Usage()
		os.Exit(1)
	}
}

// corpusFile renders a single-value corpus entry in the format understood by
// `go test -fuzz`.
func corpusFile(typ string, lit string) []byte {
	return []byte(fmt.Sprintf("go test fuzz v1\n%s(%s)\n", typ, lit))
}

// genText returns a random decimal text, sometimes padded or malformed so
// that the parser's rejection paths get seeded too.
func genText() string {
	v := gofakeit.Int64() >> uint(gofakeit.Number(0, 62))
	if gofakeit.Bool() {
		v = -v
	}
	s := dectext.FormatInt64(v)
	switch gofakeit.Number(0, 9) {
	case 0:
		return gofakeit.Numerify("00###")
	case 1:
		return s + gofakeit.RandomString([]string{"x", " ", ".5", "-"})
	default:
		return s
	}
}

func write(target string, no int64, data []byte) {
	dir := filepath.Join(OutputDir, target)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		log.Fatal(fmt.Errorf("create directory %s failed: %w", dir, err))
	}
	name := filepath.Join(dir, "seed-"+strconv.FormatInt(no, 10))
	if err := os.WriteFile(name, data, 0o644); err != nil {
		log.Fatal(fmt.Errorf("write corpus %s failed: %w", name, err))
	}
}

func main() {
	flag.Parse()
	checkArgs()
	gofakeit.Seed(Seed)
	for no := int64(1); no <= MaxFileNum; no++ {
		write("FuzzParseLong", no, corpusFile("[]byte", strconv.Quote(genText())))
		write("FuzzSerializeInt64", no, corpusFile("int64", dectext.FormatInt64(gofakeit.Int64())))
	}
	log.Printf("wrote %d files per target to %s\n", MaxFileNum, OutputDir)
}
