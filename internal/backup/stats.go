package backup

import (
	"context"
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"
)

type Summary struct {
	TotalTransactions  int    `json:"totalTransactions"`
	TotalLaborPayments int    `json:"totalLaborPayments"`
	TotalWorkers       int    `json:"totalWorkers"`
	TotalInvoices      int    `json:"totalInvoices"`
	TotalBudgets       int    `json:"totalBudgets"`
	CreatedDate        string `json:"createdDate"`
	AppVersion         string `json:"appVersion"`
}

var bengaliDigits = strings.NewReplacer(
	"0", "০", "1", "১", "2", "২", "3", "৩", "4", "৪",
	"5", "৫", "6", "৬", "7", "৭", "8", "৮", "9", "৯",
)

// Summarize counts the records of d. CreatedDate is D/M/YYYY in Bengali digits.
func Summarize(d *Data) Summary {
	created := d.CreatedAt
	return Summary{
		TotalTransactions:  len(d.Transactions),
		TotalLaborPayments: len(d.LaborPayments),
		TotalWorkers:       len(d.Workers),
		TotalInvoices:      len(d.Invoices),
		TotalBudgets:       len(d.Budgets),
		CreatedDate:        bengaliDigits.Replace(fmt.Sprintf("%d/%d/%d", created.Day(), int(created.Month()), created.Year())),
		AppVersion:         d.AppVersion,
	}
}

type KeySize struct {
	Key  string `json:"key"`
	Size int    `json:"size"`
}

type StorageStats struct {
	TotalSize int       `json:"totalSize"`
	ItemCount int       `json:"itemCount"`
	Items     []KeySize `json:"items"`
}

// StorageStats measures every key in the store, largest first. Sizes are
// UTF-8 byte lengths of the stored values.
func (s *Service) StorageStats(ctx context.Context) (StorageStats, error) {
	keys, err := s.store.ListKeys(ctx)
	if err != nil {
		return StorageStats{}, fmt.Errorf("list keys: %w", err)
	}
	st := StorageStats{ItemCount: len(keys), Items: []KeySize{}}
	for _, k := range keys {
		v, ok, err := s.store.Get(ctx, k)
		if err != nil {
			return StorageStats{}, fmt.Errorf("read %s: %w", k, err)
		}
		if !ok || v == "" {
			continue
		}
		st.TotalSize += len(v)
		st.Items = append(st.Items, KeySize{Key: k, Size: len(v)})
	}
	sort.SliceStable(st.Items, func(i, j int) bool { return st.Items[i].Size > st.Items[j].Size })
	return st, nil
}

var byteUnits = []string{"B", "KB", "MB", "GB"}

// FormatBytes renders n in 1024-based units with at most two decimals,
// e.g. "0 B", "1.5 KB", "2 MB".
func FormatBytes(n int64) string {
	if n <= 0 {
		return "0 B"
	}
	i := int(math.Floor(math.Log(float64(n)) / math.Log(1024)))
	if i >= len(byteUnits) {
		i = len(byteUnits) - 1
	}
	v := float64(n) / math.Pow(1024, float64(i))
	v = math.Round(v*100) / 100
	return strconv.FormatFloat(v, 'f', -1, 64) + " " + byteUnits[i]
}
