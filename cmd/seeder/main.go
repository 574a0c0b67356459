package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/alihaydarkir/saglikrock"
)

// demoBank is a small built-in knowledge bank for local experiments,
// loaded when no -src file is given.
const demoBank = `[
	{
		"id": "cpr_001",
		"icerik": "Yetişkin CPR'da kompresyon ventilasyon oranı 30:2'dir. Göğüs kompresyonları dakikada 100-120 hızında yapılmalıdır.",
		"kategori": "cpr",
		"alt_kategori": "temel_yasam_destegi",
		"guvenilirlik": 0.95,
		"acillik_seviyesi": "kritik",
		"metadata": {"kaynak": "AHA 2020"}
	},
	{
		"id": "cpr_002",
		"icerik": "Göğüs kompresyonu derinliği yetişkinlerde 5-6 cm olmalı, her kompresyondan sonra göğsün tam geri çekilmesine izin verilmelidir.",
		"kategori": "cpr",
		"alt_kategori": "kompresyon_teknigi",
		"guvenilirlik": 0.95,
		"acillik_seviyesi": "kritik",
		"metadata": {"kaynak": "AHA 2020"}
	},
	{
		"id": "cpr_003",
		"icerik": "Kardiyak arrest tanısı için bilinç kontrolü, solunum kontrolü ve nabız kontrolü en fazla 10 saniye içinde tamamlanmalıdır.",
		"kategori": "cpr",
		"alt_kategori": "tani",
		"guvenilirlik": 0.9,
		"acillik_seviyesi": "kritik",
		"metadata": {"kaynak": "ERC 2021"}
	},
	{
		"id": "ilac_001",
		"icerik": "Epinefrin dozu yetişkin kardiyak arrestte 1 mg IV/IO, 3-5 dakikada bir tekrarlanır.",
		"kategori": "ilaç",
		"alt_kategori": "doz_bilgisi",
		"guvenilirlik": 0.9,
		"acillik_seviyesi": "kritik",
		"metadata": {"kaynak": "ERC 2021"}
	},
	{
		"id": "ilac_002",
		"icerik": "Amiodaron şoka dirençli VF/nabızsız VT'de ilk doz 300 mg IV bolus, gerekirse ikinci doz 150 mg verilir.",
		"kategori": "ilaç",
		"alt_kategori": "doz_bilgisi",
		"guvenilirlik": 0.9,
		"acillik_seviyesi": "kritik",
		"metadata": {"kaynak": "AHA 2020"}
	},
	{
		"id": "aed_001",
		"icerik": "AED elektrotları çıplak göğse yapıştırılır. Cihaz ritim analizi yaparken hastaya kimse dokunmamalıdır.",
		"kategori": "aed",
		"alt_kategori": "kullanim",
		"guvenilirlik": 0.85,
		"acillik_seviyesi": "yuksek",
		"metadata": {"kaynak": "AHA 2020"}
	},
	{
		"id": "aed_002",
		"icerik": "Şok önerildiğinde herkesin hastadan uzaklaştığından emin olun ve şok düğmesine basın. Şok sonrası hemen kompresyona dönün.",
		"kategori": "aed",
		"alt_kategori": "defibrilasyon",
		"guvenilirlik": 0.85,
		"acillik_seviyesi": "kritik",
		"metadata": {"kaynak": "ERC 2021"}
	},
	{
		"id": "havayolu_001",
		"icerik": "Hava yolu açıklığı baş geri çene yukarı manevrası ile sağlanır. Travma şüphesinde jaw thrust tercih edilir.",
		"kategori": "hava_yolu",
		"alt_kategori": "manevralar",
		"guvenilirlik": 0.85,
		"acillik_seviyesi": "yuksek",
		"metadata": {"kaynak": "ERC 2021"}
	},
	{
		"id": "cocuk_001",
		"icerik": "Çocuklarda tek kurtarıcı varsa 30:2, iki kurtarıcı varsa 15:2 kompresyon ventilasyon oranı uygulanır.",
		"kategori": "çocuk",
		"alt_kategori": "pediatrik_cpr",
		"guvenilirlik": 0.9,
		"acillik_seviyesi": "kritik",
		"metadata": {"kaynak": "AHA 2020"}
	},
	{
		"id": "cocuk_002",
		"icerik": "Bebeklerde kompresyon iki parmakla sternumun alt yarısına, yaklaşık 4 cm derinlikte uygulanır.",
		"kategori": "çocuk",
		"alt_kategori": "bebek_cpr",
		"guvenilirlik": 0.9,
		"acillik_seviyesi": "kritik",
		"metadata": {"kaynak": "ERC 2021"}
	},
	{
		"id": "bogulma_001",
		"icerik": "Bilinçli yetişkinde tam hava yolu tıkanıklığında Heimlich manevrası uygulanır. Bilinç kaybında CPR'a başlanır.",
		"kategori": "boğulma",
		"alt_kategori": "heimlich",
		"guvenilirlik": 0.85,
		"acillik_seviyesi": "kritik",
		"metadata": {"kaynak": "ERC 2021"}
	},
	{
		"id": "genel_001",
		"icerik": "Yanıt vermeyen ve normal solumayan her hastada 112 aranmalı ve hemen göğüs kompresyonuna başlanmalıdır.",
		"kategori": "cpr",
		"alt_kategori": "genel",
		"acillik_seviyesi": "kritik",
		"metadata": {"kaynak": "AHA 2020"}
	}
]`

var (
	seedFileName = flag.String("src", "", "bank JSON file of seed data")
	dbPath       = flag.String("db", "./saglikrock.db", "path to the database directory")
)

func init() {
	handler := slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})
	slog.SetDefault(slog.New(handler))
	flag.Parse()
}

// bankPath resolves the seed source, materializing the built-in demo bank
// to a temporary file when no -src is given.
func bankPath() (string, error) {
	if seedFileName != nil && *seedFileName != "" {
		return *seedFileName, nil
	}

	path := filepath.Join(os.TempDir(), "saglikrock_demo_bank.json")
	if err := os.WriteFile(path, []byte(demoBank), 0o644); err != nil {
		return "", err
	}
	return path, nil
}

func main() {
	system, err := saglikrock.NewSystem(*dbPath)
	if err != nil {
		panic(err)
	}
	defer system.Close()

	path, err := bankPath()
	if err != nil {
		panic(err)
	}

	count, err := system.BuildIndex(context.Background(), path)
	if err != nil {
		panic(err)
	}
	fmt.Printf("Seeded %d documents into %s\n", count, *dbPath)
}
