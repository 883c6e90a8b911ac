package cmd

import "testing"

func TestListRelativeToken(t *testing.T) {
	// "-20" must reach the range parser instead of being rejected as a flag.
	t.Setenv("HOME", t.TempDir())
	rootCmd.SetArgs([]string{"list", "-20"})
	if err := rootCmd.Execute(); err != nil {
		t.Fatalf("list -20: %v", err)
	}
}

func TestRangeTokens(t *testing.T) {
	tests := []struct {
		args []string
		want []string
	}{
		{nil, nil},
		{[]string{"2012-08-01"}, []string{"2012-08-01"}},
		{[]string{"2012-08-01 09:15", "2012-08-30"}, []string{"2012-08-01", "09:15", "2012-08-30"}},
		{[]string{" -20 "}, []string{"-20"}},
	}
	for _, tt := range tests {
		got := rangeTokens(tt.args)
		if len(got) != len(tt.want) {
			t.Errorf("rangeTokens(%q) = %q, want %q", tt.args, got, tt.want)
			continue
		}
		for i := range got {
			if got[i] != tt.want[i] {
				t.Errorf("rangeTokens(%q)[%d] = %q, want %q", tt.args, i, got[i], tt.want[i])
			}
		}
	}
}
