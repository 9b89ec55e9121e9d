package osc

const zero = string(byte(0))

// nulls returns a string of `i` nulls.
func nulls(i int) string {
	s := ""
	for j := 0; j < i; j++ {
		s += zero
	}
	return s
}

type testCase struct {
	name    string
	obj     Packet
	raw     []byte
	wantErr bool
}

var messageTestCases = []testCase{
	{
		"no_args",
		NewMessage("/a"),
		[]byte("/a" + nulls(2) + "," + nulls(3)),
		false,
	},
	{
		"blend_shape",
		NewMessage("/VMC/Ext/Blend/Val", String("Joy"), Float32(1)),
		[]byte("/VMC/Ext/Blend/Val" + nulls(2) + ",sf" + nulls(1) + "Joy" + nulls(1) + "\x3f\x80\x00\x00"),
		false,
	},
	{
		"int_and_bools",
		NewMessage("/test", Int32(1), Bool(true), Bool(false)),
		[]byte("/test" + nulls(3) + ",iTF" + nulls(4) + "\x00\x00\x00\x01"),
		false,
	},
	{
		"negative_int",
		NewMessage("/n", Int32(-2)),
		[]byte("/n" + nulls(2) + ",i" + nulls(2) + "\xff\xff\xff\xfe"),
		false,
	},
	{
		"blob",
		NewMessage("/b", Blob{1, 2, 3}),
		[]byte("/b" + nulls(2) + ",b" + nulls(2) + "\x00\x00\x00\x03\x01\x02\x03\x00"),
		false,
	},
	{
		"aligned_string",
		NewMessage("/s", String("abcd")),
		[]byte("/s" + nulls(2) + ",s" + nulls(2) + "abcd" + nulls(4)),
		false,
	},
	{
		"timetag",
		NewMessage("/t", Timetag(0x0102030405060708)),
		[]byte("/t" + nulls(2) + ",t" + nulls(2) + "\x01\x02\x03\x04\x05\x06\x07\x08"),
		false,
	},
}

var bundleTestCases = []testCase{
	{
		"empty_bundle",
		NewBundle(),
		[]byte("#bundle" + nulls(1) + nulls(7) + "\x01"),
		false,
	},
	{
		"one_message",
		NewBundle(NewMessage("/a")),
		[]byte("#bundle" + nulls(1) + nulls(7) + "\x01" + "\x00\x00\x00\x08" + "/a" + nulls(2) + "," + nulls(3)),
		false,
	},
	{
		"nested",
		&Bundle{Timetag: 0x10, Elements: []Packet{
			NewMessage("/a"),
			NewBundle(NewMessage("/n", Int32(-2))),
		}},
		[]byte("#bundle" + nulls(1) + nulls(7) + "\x10" +
			"\x00\x00\x00\x08" + "/a" + nulls(2) + "," + nulls(3) +
			"\x00\x00\x00\x20" + "#bundle" + nulls(1) + nulls(7) + "\x01" +
			"\x00\x00\x00\x0c" + "/n" + nulls(2) + ",i" + nulls(2) + "\xff\xff\xff\xfe"),
		false,
	},
}
