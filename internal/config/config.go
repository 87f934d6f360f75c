package config

import (
	"os"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"github.com/zeromicro/go-zero/core/conf"
	"github.com/zeromicro/go-zero/core/logx"

	"concept-poly/typeerasure/performance"
)

/*
配置优先级：flag > 环境变量 > 配置文件 > 默认值。
默认值和配置文件由go-zero conf处理（文件里可以用${VAR}引用环境变量），
CBP_前缀的环境变量在其后覆盖，flag由命令行层最后覆盖。
*/

// EnvPrefix 环境变量前缀
const EnvPrefix = "CBP_"

// Config 应用配置
type Config struct {
	Log   logx.LogConf
	Bench BenchConf
}

// BenchConf 基准测试配置
type BenchConf struct {
	Elements    int      `json:",default=100000"`
	Repetitions int      `json:",default=1001"`
	Ratio       float64  `json:",default=0.5"`
	Seed        uint64   `json:",optional"`
	Format      string   `json:",default=text,options=text|json|yaml"`
	Variants    []string `json:",optional"`
}

// Load 读取配置。path为空时只使用默认值
func Load(path string) (Config, error) {
	var c Config
	if path == "" {
		if err := conf.FillDefault(&c); err != nil {
			return Config{}, errors.Wrap(err, "fill default config")
		}
		// 未提供配置文件时日志用纯文本，不输出统计日志
		c.Log.Encoding = "plain"
		c.Log.Stat = false
	} else if err := conf.Load(path, &c, conf.UseEnv()); err != nil {
		return Config{}, errors.Wrapf(err, "load config %s", path)
	}

	if err := c.applyEnv(os.LookupEnv); err != nil {
		return Config{}, err
	}
	if err := c.Bench.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

// applyEnv 用CBP_前缀的环境变量覆盖配置
func (c *Config) applyEnv(lookup func(string) (string, bool)) error {
	get := func(key string) (string, bool) {
		v, ok := lookup(EnvPrefix + key)
		return strings.TrimSpace(v), ok && strings.TrimSpace(v) != ""
	}

	if v, ok := get("ELEMENTS"); ok {
		n, err := strconv.Atoi(v)
		if err != nil {
			return errors.Wrapf(err, "parse %sELEMENTS", EnvPrefix)
		}
		c.Bench.Elements = n
	}
	if v, ok := get("REPS"); ok {
		n, err := strconv.Atoi(v)
		if err != nil {
			return errors.Wrapf(err, "parse %sREPS", EnvPrefix)
		}
		c.Bench.Repetitions = n
	}
	if v, ok := get("RATIO"); ok {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return errors.Wrapf(err, "parse %sRATIO", EnvPrefix)
		}
		c.Bench.Ratio = f
	}
	if v, ok := get("SEED"); ok {
		n, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			return errors.Wrapf(err, "parse %sSEED", EnvPrefix)
		}
		c.Bench.Seed = n
	}
	if v, ok := get("FORMAT"); ok {
		c.Bench.Format = v
	}
	if v, ok := get("VARIANTS"); ok {
		c.Bench.Variants = strings.Split(v, ",")
	}
	if v, ok := get("LOG_LEVEL"); ok {
		c.Log.Level = v
	}
	return nil
}

// Validate 校验基准配置
func (b BenchConf) Validate() error {
	if err := b.Harness().Validate(); err != nil {
		return err
	}
	if _, err := performance.ParseFormat(b.Format); err != nil {
		return err
	}
	_, err := b.ParsedVariants()
	return err
}

// Harness 转换为基准测试运行参数
func (b BenchConf) Harness() performance.Config {
	return performance.Config{
		Elements:    b.Elements,
		Repetitions: b.Repetitions,
		Ratio:       b.Ratio,
		Seed:        b.Seed,
	}
}

// ParsedVariants 为空表示全部
func (b BenchConf) ParsedVariants() ([]performance.Variant, error) {
	variants := make([]performance.Variant, 0, len(b.Variants))
	for _, s := range b.Variants {
		v, err := performance.ParseVariant(s)
		if err != nil {
			return nil, err
		}
		variants = append(variants, v)
	}
	return variants, nil
}
