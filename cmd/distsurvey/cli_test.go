package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/tsawler/distsurvey/config"
	"github.com/tsawler/distsurvey/source"
)

func sampleDoc() *source.Document {
	return &source.Document{Pages: []source.Page{{
		Number: 1,
		Text:   "공장명 : 한빛건설 ○\n공 사 명 : 신축공사",
		Tables: []source.Table{{
			{"목공", "", "비계설치", "톨루엔", "13", "2조2교대"},
		}},
	}}}
}

// setup installs the globals normally prepared by the root command.
func setup(t *testing.T) *bytes.Buffer {
	t.Helper()
	cfg = config.DefaultConfig()
	logger = zap.NewNop()
	loader = source.Static{Doc: sampleDoc()}
	outputPath = ""
	pageList = nil
	t.Cleanup(func() {
		loader = nil
		outputPath = ""
	})
	return &bytes.Buffer{}
}

func command(out *bytes.Buffer) *cobra.Command {
	cmd := &cobra.Command{}
	cmd.SetOut(out)
	return cmd
}

func TestConvertCmdStdout(t *testing.T) {
	out := setup(t)

	require.NoError(t, runConvert(command(out), []string{"report.pdf"}))

	text := out.String()
	assert.Contains(t, text, "■ 한빛건설 신축공사에 대한 공정별 작업내용과")
	assert.Contains(t, text, "   ◇ 유해인자 : * 유기화합물 : 톨루엔")
	assert.Contains(t, text, "   ◇ 근무현황 : 13명, 2조2교대")
	assert.True(t, strings.HasSuffix(text, strings.Repeat("-", 93)+"\n"))
}

func TestConvertCmdOutputFile(t *testing.T) {
	out := setup(t)
	outputPath = filepath.Join(t.TempDir(), "분포실태_결과.txt")

	require.NoError(t, runConvert(command(out), []string{"report.pdf"}))

	data, err := os.ReadFile(outputPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), "■ 목공")
	assert.False(t, strings.HasSuffix(string(data), "\n"))
	assert.Empty(t, out.String())
}

func TestConvertCmdError(t *testing.T) {
	out := setup(t)
	loader = source.Static{Err: source.ErrNotPDF}

	err := runConvert(command(out), []string{"report.docx"})
	require.Error(t, err)
	assert.ErrorIs(t, err, source.ErrNotPDF)
}

func TestTablesCmd(t *testing.T) {
	out := setup(t)
	loader = source.Static{Doc: &source.Document{Pages: []source.Page{
		{Number: 2, Tables: []source.Table{{{"목공", "", "비계\n설치"}, {"a\tb"}}}},
	}}}

	require.NoError(t, runTables(command(out), []string{"report.pdf"}))

	want := "# page 2 table 1\n목공\t\t비계 설치\na b\n"
	assert.Equal(t, want, out.String())
}

func TestClassifyCmd(t *testing.T) {
	out := setup(t)

	require.NoError(t, runClassify(command(out), []string{"톨루엔", "소음", "일산화탄소", "유해인자"}))

	want := "톨루엔\t유기화합물\n소음\t물리적인자\n일산화탄소\t기타\n유해인자\t-\n"
	assert.Equal(t, want, out.String())
}

func TestRootCmdLoadsConfig(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "distsurvey.yaml")
	require.NoError(t, os.WriteFile(path, []byte("logging:\n  level: error\n"), 0644))

	out := &bytes.Buffer{}
	rootCmd.SetOut(out)
	rootCmd.SetArgs([]string{"--config", path, "classify", "황산"})
	t.Cleanup(func() { rootCmd.SetArgs(nil) })

	require.NoError(t, rootCmd.Execute())
	assert.Equal(t, "error", cfg.Logging.Level)
	assert.Equal(t, "황산\t산 및 알칼리류\n", out.String())
}

func TestRootCmdRejectsInvalidConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "distsurvey.yaml")
	require.NoError(t, os.WriteFile(path, []byte("rows:\n  min_cells: 0\n"), 0644))

	rootCmd.SetOut(&bytes.Buffer{})
	rootCmd.SetErr(&bytes.Buffer{})
	rootCmd.SetArgs([]string{"--config", path, "classify", "소음"})
	t.Cleanup(func() { rootCmd.SetArgs(nil) })

	err := rootCmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "min_cells")
}
