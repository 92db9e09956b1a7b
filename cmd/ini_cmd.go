package cmd

import (
	"fmt"
	"os"

	"github.com/dzjyyds666/cq/parse/ini"
	"github.com/dzjyyds666/cq/pkg"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

type IniParams struct {
	Find     string `json:"find"`     // 查找的key
	Input    string `json:"input"`    // 输入文件路径
	Output   string `json:"output"`   // 输出文件地址
	Strict   bool   `json:"strict"`   // 严格模式
	Validate bool   `json:"validate"` // 解析之后校验
}

var iniParams *IniParams

var iniCmd = &cobra.Command{
	Use:   "ini",
	Short: "ini parse tools",
	Run:   iniRun,
}

func init() {
	iniParams = &IniParams{}
	iniCmd.Flags().StringVarP(&iniParams.Find, "find", "f", "", "find")
	iniCmd.Flags().StringVarP(&iniParams.Input, "input", "i", "", "input file path")
	iniCmd.Flags().StringVarP(&iniParams.Output, "output", "o", "", "output path")
	iniCmd.Flags().BoolVar(&iniParams.Strict, "strict", false, "abort on the first parse error")
	iniCmd.Flags().BoolVar(&iniParams.Validate, "validate", false, "validate entries after parsing")
}

func iniRun(cmd *cobra.Command, args []string) {
	if len(iniParams.Input) == 0 {
		fmt.Println("no input file path")
		return
	}
	exist, err := pkg.CheckFileExist(iniParams.Input)
	if err != nil {
		fmt.Println("check file exist error:", err)
		return
	}
	if !exist {
		fmt.Println("input file not exist")
		return
	}

	text, err := pkg.ReadFileString(iniParams.Input)
	if err != nil {
		fmt.Println("read file error:", err)
		os.Exit(1)
	}

	parser := ini.NewParser(iniParams.Strict)
	cfg, err := parser.ParseString(text)
	if err != nil {
		fmt.Println("parse error:", err)
		os.Exit(1)
	}

	if iniParams.Validate {
		if err := cfg.Validate(); err != nil {
			fmt.Println("validation error:", err)
			os.Exit(1)
		}
	}

	if len(iniParams.Output) > 0 {
		data, err := yaml.Marshal(cfg.ToUntyped())
		if err != nil {
			fmt.Println("marshal error:", err)
			os.Exit(1)
		}
		if err := os.WriteFile(iniParams.Output, data, 0o644); err != nil {
			fmt.Println("write output error:", err)
			os.Exit(1)
		}
		return
	}

	if len(iniParams.Find) > 0 {
		if v, ok := cfg.Lookup(iniParams.Find); ok {
			fmt.Printf("%s = %s\n", iniParams.Find, v)
		} else {
			fmt.Println("not found:", iniParams.Find)
		}
		return
	}

	printConfig(cfg)
}

func printConfig(cfg *ini.Config) {
	fmt.Printf("Configuration (%d entries):\n", cfg.Len())
	fmt.Println("================================")
	for _, e := range cfg.Entries() {
		if e.Section != "" {
			fmt.Printf("[%s] ", e.Section)
		}
		fmt.Printf("%s = %s\n", e.Key, e.Value)
	}
	fmt.Println("================================")
}
