// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package ref

import (
	"encoding/json"
	"testing"
)

func TestMatrixToURL(t *testing.T) {
	tests := []struct {
		name string
		ref  MatrixToRef
		want string
	}{
		{
			name: "user",
			ref:  MustParseUserID("@jplatte:notareal.hs").MatrixToURL(),
			want: "https://matrix.to/#/%40jplatte%3Anotareal%2Ehs",
		},
		{
			name: "room without via",
			ref:  MustParseRoomID("! roomid:notareal.hs").MatrixToURL(),
			want: "https://matrix.to/#/%21%20roomid%3Anotareal%2Ehs",
		},
		{
			name: "room with one via",
			ref:  MustParseRoomID("!roomid:notareal.hs").MatrixToURL(MustParseServerName("notareal.hs")),
			want: "https://matrix.to/#/%21roomid%3Anotareal%2Ehs?via=notareal.hs",
		},
		{
			name: "room with ordered via list",
			ref: MustParseRoomID("!roomid:notareal.hs").MatrixToURL(
				MustParseServerName("notareal.hs"),
				MustParseServerName("anotherinexistent.org"),
				MustParseServerName("[::1]:8448"),
			),
			want: "https://matrix.to/#/%21roomid%3Anotareal%2Ehs?via=notareal.hs&via=anotherinexistent.org&via=[::1]:8448",
		},
		{
			name: "alias",
			ref:  MustParseRoomAlias("#alias:notareal.hs").MatrixToURL(),
			want: "https://matrix.to/#/%23alias%3Anotareal%2Ehs",
		},
		{
			name: "event in room",
			ref: MustParseEventID("$event").MatrixToURL(
				MustParseRoomID("!roomid:notareal.hs"),
				MustParseServerName("notareal.hs"),
			),
			want: "https://matrix.to/#/%21roomid%3Anotareal%2Ehs/%24event?via=notareal.hs",
		},
		{
			name: "multibyte localpart",
			ref:  MustParseRoomID("!ä:x.y").MatrixToURL(),
			want: "https://matrix.to/#/%21%C3%A4%3Ax%2Ey",
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			if got := test.ref.String(); got != test.want {
				t.Errorf("String() = %q, want %q", got, test.want)
			}
		})
	}
}

func TestMatrixToRefJSON(t *testing.T) {
	link := MustParseUserID("@jplatte:notareal.hs").MatrixToURL()
	data, err := json.Marshal(map[string]any{"link": link})
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	want := `{"link":"https://matrix.to/#/%40jplatte%3Anotareal%2Ehs"}`
	if string(data) != want {
		t.Errorf("Marshal = %s, want %s", data, want)
	}
}
