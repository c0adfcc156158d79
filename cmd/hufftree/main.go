package main

import (
	"bytes"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/cespare/xxhash/v2"

	"github.com/chronos-tachyon/hufftree"
)

func main() {
	var sModeFlag = flag.String("mode", "", "one of: compress, decompress, verify")
	var sInFlag = flag.String("in", "", "input file")
	var sOutFlag = flag.String("out", "", "output file (not used by verify)")
	flag.Parse()

	var err error
	switch *sModeFlag {
	case "compress":
		err = compressFile(*sInFlag, *sOutFlag)
	case "decompress":
		err = decompressFile(*sInFlag, *sOutFlag)
	case "verify":
		err = verifyFile(*sInFlag)
	default:
		flag.Usage()
		os.Exit(2)
	}
	if err != nil {
		log.Fatal(err)
	}
}

func compressFile(inPath, outPath string) error {
	in, err := os.Open(inPath)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.Create(outPath)
	if err != nil {
		return err
	}
	if err := hufftree.Compress(in, out); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}

func decompressFile(inPath, outPath string) error {
	in, err := os.Open(inPath)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.Create(outPath)
	if err != nil {
		return err
	}
	if err := hufftree.Decompress(in, out); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}

// verifyFile compresses inPath in memory, decompresses the result, and
// compares XXH64 digests of the original against the round trip.
func verifyFile(inPath string) error {
	original, err := os.ReadFile(inPath)
	if err != nil {
		return err
	}

	var compressed bytes.Buffer
	if err := hufftree.Compress(bytes.NewReader(original), &compressed); err != nil {
		return err
	}
	var restored bytes.Buffer
	if err := hufftree.Decompress(bytes.NewReader(compressed.Bytes()), &restored); err != nil {
		return err
	}

	want := xxhash.Sum64(original)
	got := xxhash.Sum64(restored.Bytes())
	if want != got {
		return fmt.Errorf("round trip mismatch: xxh64 %016x != %016x", got, want)
	}

	ratio := 0.0
	if len(original) > 0 {
		ratio = 100 * float64(compressed.Len()) / float64(len(original))
	}
	fmt.Printf("ok: %d bytes -> %d bytes (%.1f%%), xxh64 %016x\n",
		len(original), compressed.Len(), ratio, want)
	return nil
}
