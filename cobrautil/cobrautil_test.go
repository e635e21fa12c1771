package cobrautil

import (
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/statikomand/komand"
	"github.com/statikomand/komand/suggest"
)

func makeShowCmd(t *testing.T) *cobra.Command {
	t.Helper()
	cmd := &cobra.Command{
		Use:   "show",
		Short: "list stored segments",
	}
	cmd.Flags().StringP("collection", "c", "", "collection to list")
	cmd.Flags().String("format", "default", "output format")
	cmd.Flags().Bool("detail", false, "print full detail")
	require.NoError(t, cmd.Flags().SetAnnotation("format", AnnotationValues, []string{"default", "json", "table"}))
	require.NoError(t, cmd.Flags().SetAnnotation("collection", AnnotationSuggester, []string{"collections"}))
	return cmd
}

func TestNewParser(t *testing.T) {
	p, err := NewParser(makeShowCmd(t))
	require.NoError(t, err)

	assert.Equal(t, "list stored segments", p.Description())

	byLabel := make(map[string]*komand.Argument)
	for _, arg := range p.Arguments() {
		byLabel[arg.Label()] = arg
	}

	collection, ok := byLabel["collection"]
	require.True(t, ok)
	assert.Equal(t, komand.KindValueFlag, collection.Kind())
	assert.Equal(t, []string{"-c", "--collection"}, collection.Tokens())
	assert.Equal(t, "collection to list", collection.Help())

	format, ok := byLabel["format"]
	require.True(t, ok)
	assert.Equal(t, []string{"--format"}, format.Tokens())

	detail, ok := byLabel["detail"]
	require.True(t, ok)
	assert.Equal(t, komand.KindFlag, detail.Kind())
}

func TestNewParserMatching(t *testing.T) {
	p, err := NewParser(makeShowCmd(t))
	require.NoError(t, err)

	result, err := p.Parse("-c demo --format json --detail")
	require.NoError(t, err)

	collection, _ := result.GetString("collection")
	assert.Equal(t, "demo", collection)
	format, _ := result.GetString("format")
	assert.Equal(t, "json", format)
	assert.True(t, result.GetBool("detail"))
}

func TestNewParserCompletion(t *testing.T) {
	t.Run("flag_tokens", func(t *testing.T) {
		p, err := NewParser(makeShowCmd(t))
		require.NoError(t, err)

		assert.Equal(t, []string{"--collection"}, p.Complete("--c"))
		assert.Contains(t, p.Complete("-"), "-c")
	})

	t.Run("values_annotation", func(t *testing.T) {
		p, err := NewParser(makeShowCmd(t))
		require.NoError(t, err)

		assert.Equal(t, []string{"json"}, p.Complete("--format j"))
		assert.Equal(t, []string{"default", "json", "table"}, p.Complete("--format "))
	})

	t.Run("suggester_annotation", func(t *testing.T) {
		suggest.Register("collections", suggest.Static("demo", "default"))
		defer suggest.Unregister("collections")

		p, err := NewParser(makeShowCmd(t))
		require.NoError(t, err)

		assert.Equal(t, []string{"demo", "default"}, p.Complete("--collection d"))
	})

	t.Run("bool_flag_takes_no_value", func(t *testing.T) {
		p, err := NewParser(makeShowCmd(t))
		require.NoError(t, err)

		assert.Empty(t, p.Complete("--detail "))
	})
}

func TestNewParserUseArguments(t *testing.T) {
	cmd := &cobra.Command{
		Use:   "restore [file] [target]",
		Short: "restore a backup file",
	}

	p, err := NewParser(cmd)
	require.NoError(t, err)

	args := p.Arguments()
	require.Len(t, args, 2)
	assert.Equal(t, komand.KindPositional, args[0].Kind())
	assert.Equal(t, "file", args[0].Label())
	assert.NotNil(t, args[0].Completer())
	assert.Equal(t, "target", args[1].Label())
	assert.Nil(t, args[1].Completer())

	result, err := p.Parse("backup.bin demo")
	require.NoError(t, err)
	file, _ := result.GetString("file")
	assert.Equal(t, "backup.bin", file)
	target, _ := result.GetString("target")
	assert.Equal(t, "demo", target)
}

func TestUseArgs(t *testing.T) {
	assert.Nil(t, useArgs("show"))
	assert.Equal(t, []string{"file"}, useArgs("load [file]"))
	assert.Equal(t, []string{"file", "directory"}, useArgs("copy [file] [directory]"))
}
