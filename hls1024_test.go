package hls1024

import (
	"bytes"
	"encoding/hex"
	"testing"

	"github.com/zeebo/blake3"
	"github.com/zeebo/xxh3"
)

// Copyright © 2024 JXPH. Licensed under the Apache-2.0 license.

/* Reference digests pinned from the normalized construction; any change to
constant derivation, framing, the permutation, finalization, or extraction
shows up here first. */
var knownAnswers = []struct {
	profile *Profile
	message []byte
	hex     string
}{
	{Enhanced, []byte{},
		"1d1bcc23771efee5a0311b9c705021149ecabe8c5e03cb6837e7642b9abfaf2b" +
			"7637361ddf4732d2fdddf53564b6f0c41106830bd0008125c08391a411620015" +
			"47e4236c4b2333cf8b5bcc3d264df449907cf33b92b26f0f79007304093466d4" +
			"0c57e770c3f7c033897871c0da8b802bbc9da5925dd5eb5fa3303d45bc1b4dbb"},
	{Enhanced, []byte("abc"),
		"9f9afe9740b962760619bc8b5231bbd19721e58216be16db0fb63677100d2f4a" +
			"489b6c1ee0b89ba6de4b0866e20efd109d293f5c73aa5c91a02c70371362d1e5" +
			"753c3dcd04e2dac2cf0afd5fe4f4027ca86c926d5cbaa2c9c2d05783837b4841" +
			"c18378ae4a7e5a0436b33dbdf869c44f17d58dffa96d7127d2564de45214a5cb"},
	{Enhanced, []byte("The quick brown fox jumps over the lazy dog"),
		"d83616860c0aca931a3e55e40e13ba1b934a71200122042050e42b678938dc68" +
			"5ce7948e12cc725b44dbd3e2657fe243ac7fa7de246ee486323ef3c766473002" +
			"d0671a4dcbdae2ca55c9d3c09ca841a025bcb7758ed9ebab419baef365670a86" +
			"0887f11681ad94b69808efbfb1932f41a1660cac1561aa424ac3cbe9e49b63c4"},
	{Enhanced, []byte("selftest"),
		"6cb45a4fb028f93054abfa0953ccd15a17f952a16a4f879af5dd87a4b8e15612" +
			"6a9f48ff661a4d0663a6929b6ffd9bc4e6e3ec1b2e0de20d623b468667bbbc82" +
			"92dfd094f5d89105564bdddc7d469005657012c0fad7900555f75f3c5a4cd52a" +
			"f361b2627cbc028c293bf289b7f1ee2f45025c89f2348c3c2a5ae571aa98cddc"},
	{Enhanced, iota100(),
		"7da4e370069aa22450a1754b633c7c33e5be8f4042aa00a5c1708c8facefde51" +
			"718fe8c7f4b27227c2c8868850b3beb4a6478f0a1230e4835a96dd4ede5cbe29" +
			"30ee55b0c188da77fcd8f43c03eafb4ee1953dfeb17df6ed01c87e8aa2c61209" +
			"7476bee75c65756a20c8408f8228285afa91611569f51147150f728968637971"},
	{Baseline, []byte{},
		"d61b16b2576d94240a7baa37b2cb2b663d1ec901228a181aab9f2ae008049325" +
			"242a80e56b370c8050add479427a3aa9f110c0a2db70a49da7bf011c417b56de" +
			"ce59ff5f30c980e9f7f61f1a840ad35d30ad29a63ddb48262856beb5efdd9bf2" +
			"38d99342d7ebd85b01e4322579ce581d08e628e69c6d2a9a1916a7baff22064b"},
	{Baseline, []byte("abc"),
		"d8d692504be9b722fb830203afffc9b861c11863e7c2ab115739cd884f882959" +
			"9ea95ac4dfc00184cc48c17893da15d0ce96cd8d68576c10ecf0668641ade14f" +
			"e8f89900d19b7b366e18260f255bfb4d36ef6102cfada08f32cc33d455f2806a" +
			"28e400f1bf231701a73e322020bf790a6c266e8e475d9083f3e2e8b8ad57bebc"},
	{Baseline, []byte("The quick brown fox jumps over the lazy dog"),
		"1d3d1401270fbb7d7f6afb42784de76fbd249c59af29e8ab94eaeda35b6c0db8" +
			"7aed49503b6e90eb38772a307f13ee7346a8babf23161bf5092e32fca19d490d" +
			"d6bc2ef15964e4ae6147635bdaaaa6524e88873f533f4c39c4473c1f2685c45f" +
			"7535ca8293b46c5322846a5df2d9daeb6ead55a5012900d74d586519a93598a5"},
	{Baseline, []byte("selftest"),
		"b2d81cdce25a033cbd85d447b59e69227a4fb9e0ec0220bb640922e7dd52213b" +
			"69ea5f2480b868befa5821d3865788837656bc52755caf302669b7848a4f1938" +
			"2f3e0837d0945219a0908ff0dafac9cff3297d4c9ec705e0260e0d61750fd987" +
			"29c027575531a14f0d33ad6fb7a8c7108c661f71abb107243c90956cb121f499"},
	{Baseline, iota100(),
		"8eb33e221138b9530e9bd431c03d7e49396eb770ee8d3ff5b27264aa60063b5c" +
			"c2da447d16388dc97ed32066c3809c6bb5cd997a21225f2db97a97ceb636511a" +
			"fedf868489231113a7b9bad8b9767cff1ff5b5580f267067afe655d6b705d251" +
			"5f31a9cd36a18ffb59d370b4d045cbda209aeebc4a62c5bedf2ec7e58de1426d"},
}

/* A two-block message exercises the per-block mixing-vector index path. */
func iota100() []byte {
	msg := make([]byte, 100)
	for i := range msg {
		msg[i] = byte(i)
	}
	return msg
}

func TestKnownAnswers(t *testing.T) {
	for _, v := range knownAnswers {
		want, err := hex.DecodeString(v.hex)
		if err != nil {
			t.Fatal(err)
		}
		got := v.profile.Sum(v.message)
		if !bytes.Equal(got, want) {
			t.Errorf("%s.Sum(%q) = %x, want %x", v.profile.Name(), v.message, got, want)
		}
	}
}

func TestDeterminism(t *testing.T) {
	msg := []byte("determinism probe")
	for _, pr := range []*Profile{Baseline, Enhanced} {
		first := pr.Sum(msg)
		for i := 0; i < 3; i++ {
			if !bytes.Equal(first, pr.Sum(msg)) {
				t.Fatalf("%s: repeated Sum calls disagree", pr.Name())
			}
		}
	}
}

func TestDigestLength(t *testing.T) {
	for _, pr := range []*Profile{Baseline, Enhanced} {
		for _, size := range []int{0, 1, 62, 63, 64, 65, 127, 200} {
			if got := len(pr.Sum(make([]byte, size))); got != pr.Size() {
				t.Errorf("%s: %d-byte message: digest length %d, want %d",
					pr.Name(), size, got, pr.Size())
			}
		}
	}
}

func TestCrossProfileDivergence(t *testing.T) {
	for _, msg := range [][]byte{nil, []byte("abc"), iota100()} {
		if bytes.Equal(Baseline.Sum(msg), Enhanced.Sum(msg)) {
			t.Errorf("profiles collide on %q", msg)
		}
	}
}

func TestSplitIntoBlocks(t *testing.T) {
	for size := 0; size <= 200; size++ {
		msg := make([]byte, size)
		for i := range msg {
			msg[i] = byte(i * 7)
		}
		blocks := Enhanced.splitIntoBlocks(msg)

		want := (size + 2 + Enhanced.blockBytes - 1) / Enhanced.blockBytes
		if len(blocks) != want {
			t.Fatalf("%d-byte message: %d blocks, want %d", size, len(blocks), want)
		}
		joined := make([]byte, 0, len(blocks)*Enhanced.blockBytes)
		for _, b := range blocks {
			if len(b) != Enhanced.blockBytes {
				t.Fatalf("%d-byte message: block of %d bytes", size, len(b))
			}
			joined = append(joined, b...)
		}
		if !bytes.Equal(joined[:size], msg) {
			t.Fatalf("%d-byte message: padded bytes do not start with the message", size)
		}
		if joined[size] != 0x01 || joined[len(joined)-1] != 0x80 {
			t.Fatalf("%d-byte message: framing markers missing", size)
		}
		for _, b := range joined[size+1 : len(joined)-1] {
			if b != 0 {
				t.Fatalf("%d-byte message: nonzero padding byte", size)
			}
		}
	}
}

func TestDeriveConst(t *testing.T) {
	a := Enhanced.deriveConst([]byte("probe"), 16)
	b := Enhanced.deriveConst([]byte("probe"), 16)
	for i := range a {
		if a[i].Cmp(b[i]) != 0 {
			t.Fatal("derivation is not deterministic")
		}
		if a[i].Sign() < 0 || a[i].Cmp(field.prime) >= 0 {
			t.Fatalf("element %d out of field range", i)
		}
	}
	c := Enhanced.deriveConst([]byte("probe2"), 16)
	if a[0].Cmp(c[0]) == 0 {
		t.Fatal("distinct labels yielded identical leading elements")
	}
	if got := Enhanced.deriveConst([]byte("probe"), 0); len(got) != 0 {
		t.Fatalf("count=0 yielded %d elements", len(got))
	}
}

func TestParameters(t *testing.T) {
	p := Enhanced.Parameters()
	if p.StateSize != 512 || p.RoundCount != 24 || p.OutputBits != 1024 ||
		p.BlockBytes != 64 || p.PrimeModulusHex != primeHex {
		t.Fatalf("unexpected enhanced parameters: %+v", p)
	}
	if b := Baseline.Parameters(); b.RoundCount != 16 {
		t.Fatalf("unexpected baseline round count: %d", b.RoundCount)
	}
	if Enhanced.Size() != 128 || Enhanced.BlockSize() != 64 {
		t.Fatal("Size/BlockSize disagree with Parameters")
	}
}

func BenchmarkSum(b *testing.B) {
	msg := make([]byte, 64)
	b.SetBytes(64)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		Sum(msg)
	}
}

func BenchmarkBaseline(b *testing.B) {
	msg := make([]byte, 64)
	b.SetBytes(64)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		Baseline.Sum(msg)
	}
}

func BenchmarkBlake3(b *testing.B) {
	msg := make([]byte, 64)
	b.SetBytes(64)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		blake3.Sum512(msg)
	}
}

func BenchmarkXXH3(b *testing.B) {
	msg := make([]byte, 64)
	b.SetBytes(64)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		xxh3.Hash(msg)
	}
}
