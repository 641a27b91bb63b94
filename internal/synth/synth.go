// Package synth fabricates identifiers and personal details in Indian banking formats.
package synth

import (
	"fmt"
	"strings"
	"time"

	"aggregator/internal/catalog"
	"aggregator/internal/random"
)

type Rail string

const (
	RailNEFT Rail = "NEFT"
	RailRTGS Rail = "RTGS"
	RailIMPS Rail = "IMPS"
	RailUPI  Rail = "UPI"
)

// PAN returns five letters, four digits and a check letter.
func PAN(src *random.Source) string {
	return src.Letters(5) + src.Digits(4) + src.Letters(1)
}

func IFSC(src *random.Source, prefix string) string {
	return fmt.Sprintf("%s%d", prefix, src.Int(100000, 999999))
}

func Mobile(src *random.Source) string {
	return random.Pick(src, []string{"6", "7", "8", "9"}) + src.Digits(9)
}

func AccountNumber(src *random.Source, length int) string {
	return src.Digits(length)
}

// Mask replaces all but the last four characters with X.
func Mask(accountNumber string) string {
	if len(accountNumber) <= 4 {
		return accountNumber
	}
	return strings.Repeat("X", len(accountNumber)-4) + accountNumber[len(accountNumber)-4:]
}

func MICR(src *random.Source) string {
	return src.Digits(9)
}

func Folio(src *random.Source) string {
	return src.Letters(3) + "/" + src.Digits(6) + "/" + src.Digits(4)
}

func LinkRef(src *random.Source) string {
	return fmt.Sprintf("%d-%d-%d", src.Int(1000, 9999), src.Int(1000, 9999), src.Int(1000, 9999))
}

// UTR builds a unique transaction reference for the rail as of the given day.
func UTR(src *random.Source, rail Rail, on time.Time) string {
	switch rail {
	case RailNEFT:
		return "NEFT" + fmt.Sprint(src.Int64(100000000000000, 999999999999999))
	case RailRTGS:
		return "RTGS" + on.Format("060102") + fmt.Sprint(src.Int64(100000000000, 999999999999))
	case RailIMPS:
		return "IMP" + fmt.Sprint(src.Int64(100000000000, 999999999999))
	default:
		return fmt.Sprint(src.Int64(100000000000, 999999999999))
	}
}

func ATMID(src *random.Source) string {
	return fmt.Sprintf("ATM%d", src.Int(100000, 999999))
}

func CardTxnID(src *random.Source, on time.Time) string {
	return fmt.Sprintf("CARD%d%d", on.Year(), src.Int64(100000000000, 999999999999))
}

func Email(src *random.Source, name string) string {
	local := strings.Join(strings.Fields(strings.ToLower(name)), ".")
	return local + "@" + random.Pick(src, catalog.EmailDomains)
}

// DOB returns a birth date for someone between minAge and maxAge years old.
func DOB(src *random.Source, now time.Time, minAge, maxAge int) time.Time {
	year := now.Year() - src.Int(minAge, maxAge)
	return time.Date(year, time.Month(src.Int(1, 12)), src.Int(1, 28), 0, 0, 0, 0, time.UTC)
}

func Address(src *random.Source, city catalog.City) string {
	streets := []string{"Street", "Road", "Lane", "Avenue", "Colony", "Nagar", "Marg"}
	areas := []string{"Sector", "Phase", "Block", "Area"}
	return fmt.Sprintf("%d, %s %d, %s, %s, %s",
		src.Int(1, 999), random.Pick(src, areas), src.Int(1, 50), random.Pick(src, streets), city.Name, city.State)
}

func Pincode(src *random.Source) string {
	return fmt.Sprint(src.Int(100000, 999999))
}

// UPIHandle turns a merchant name into a VPA such as "bigbasket@ybl".
func UPIHandle(src *random.Source, merchant string) string {
	return strings.ReplaceAll(strings.ToLower(merchant), " ", "") + "@" + random.Pick(src, catalog.UPIHandles)
}
