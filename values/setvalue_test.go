package values

import "testing"

func TestSetValue(t *testing.T) {
	tests := []struct {
		name    string
		width   Width
		lexeme  string
		want    Value
		wantErr error
	}{
		{name: "u8 decimal", width: U8, lexeme: "200", want: fromUnsigned(U8, 200)},
		{name: "u8 overflow", width: U8, lexeme: "256", wantErr: &OverflowError{}},
		{name: "u8 negative underflows", width: U8, lexeme: "-1", wantErr: &UnderflowError{}},
		{name: "i8 negative", width: I8, lexeme: "-128", want: fromSigned(I8, -128)},
		{name: "i8 underflow", width: I8, lexeme: "-129", wantErr: &UnderflowError{}},
		{name: "i8 overflow", width: I8, lexeme: "128", wantErr: &OverflowError{}},
		{name: "u32 hex", width: U32, lexeme: "0xFF", want: fromUnsigned(U32, 0xFF)},
		{name: "u64 hex max", width: U64, lexeme: "0xFFFFFFFFFFFFFFFF", want: fromUnsigned(U64, 1<<64 - 1)},
		{name: "i32 hex overflow", width: I32, lexeme: "0xFFFFFFFF", wantErr: &OverflowError{}},
		{name: "char literal", width: U8, lexeme: "'a'", want: fromUnsigned(U8, 'a')},
		{name: "escaped char literal", width: U8, lexeme: `'\n'`, want: fromUnsigned(U8, '\n')},
		{name: "escaped null char", width: U16, lexeme: `'\0'`, want: fromUnsigned(U16, 0)},
		{name: "empty lexeme", width: U8, lexeme: "", wantErr: &EmptyError{}},
		{name: "garbage decimal", width: U8, lexeme: "abc", wantErr: &InvalidInputError{}},
		{name: "i64 min boundary", width: I64, lexeme: "-9223372036854775808", want: fromSigned(I64, -1 << 63)},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := SetValue(tc.width, tc.lexeme)

			if tc.wantErr != nil {
				if err == nil {
					t.Fatalf("SetValue(%v, %q): want error %T, got nil", tc.width, tc.lexeme, tc.wantErr)
				}

				assertErrType(t, tc.wantErr, err)

				return
			}

			if err != nil {
				t.Fatalf("SetValue(%v, %q): unexpected error: %v", tc.width, tc.lexeme, err)
			}

			if !got.Equal(tc.want) {
				t.Fatalf("SetValue(%v, %q) = %+v, want %+v", tc.width, tc.lexeme, got, tc.want)
			}
		})
	}
}

func TestIncrement(t *testing.T) {
	tests := []struct {
		name    string
		in      Value
		want    Value
		wantErr bool
	}{
		{name: "u8 middle", in: fromUnsigned(U8, 5), want: fromUnsigned(U8, 6)},
		{name: "u8 at max overflows", in: fromUnsigned(U8, 255), wantErr: true},
		{name: "i8 at max overflows", in: fromSigned(I8, 127), wantErr: true},
		{name: "i8 negative", in: fromSigned(I8, -5), want: fromSigned(I8, -4)},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := Increment(tc.in)

			if tc.wantErr {
				if err == nil {
					t.Fatalf("Increment(%+v): want error, got nil", tc.in)
				}

				return
			}

			if err != nil {
				t.Fatalf("Increment(%+v): unexpected error: %v", tc.in, err)
			}

			if !got.Equal(tc.want) {
				t.Fatalf("Increment(%+v) = %+v, want %+v", tc.in, got, tc.want)
			}
		})
	}
}

func assertErrType(t *testing.T, want, got error) {
	t.Helper()

	switch want.(type) {
	case *OverflowError:
		if _, ok := got.(*OverflowError); !ok {
			t.Fatalf("got error %T (%v), want *OverflowError", got, got)
		}
	case *UnderflowError:
		if _, ok := got.(*UnderflowError); !ok {
			t.Fatalf("got error %T (%v), want *UnderflowError", got, got)
		}
	case *InvalidInputError:
		if _, ok := got.(*InvalidInputError); !ok {
			t.Fatalf("got error %T (%v), want *InvalidInputError", got, got)
		}
	case *EmptyError:
		if _, ok := got.(*EmptyError); !ok {
			t.Fatalf("got error %T (%v), want *EmptyError", got, got)
		}
	}
}
