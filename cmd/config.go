package cmd

type Config struct {
	Timezone    string
	PricingFile string
}
