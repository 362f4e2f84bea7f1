// Package locale carries the en/id translation tables. Only the keys
// the terminal frontends render are included; the stored sm_locale
// value is the bare language code.
package locale

// Default is the locale used when nothing is stored.
const Default = "en"

// Table maps dotted message keys to translated text.
type Table map[string]string

// Known reports whether code has a translation table.
func Known(code string) bool {
	_, ok := tables[code]
	return ok
}

// For returns the table for code, falling back to the default locale.
func For(code string) Table {
	if t, ok := tables[code]; ok {
		return t
	}
	return tables[Default]
}

// Get looks up key, falling back to the English text, then the key
// itself.
func (t Table) Get(key string) string {
	if msg, ok := t[key]; ok {
		return msg
	}
	if msg, ok := tables[Default][key]; ok {
		return msg
	}
	return key
}

var tables = map[string]Table{
	"en": {
		"greeting.morning":        "Good Morning",
		"greeting.afternoon":      "Good Afternoon",
		"greeting.evening":        "Good Evening",
		"greeting.checkin":        "Let's check in",
		"dashboard.mood_title":    "Today's Mood",
		"dashboard.no_data":       "No Data",
		"dashboard.check_in":      "Check in!",
		"dashboard.streak_title":  "Total Logs",
		"dashboard.streak_unit":   "check-ins",
		"dashboard.streak_msg":    "Keep logging! 🔥",
		"dashboard.study_plan":    "Study Plan",
		"dashboard.recent_logs":   "Recent Logs",
		"dashboard.no_logs":       "No logs yet.",
		"daily.new_entry":         "New Entry",
		"daily.stress_check":      "Academic Stress Check-in",
		"daily.current_stress":    "Current Stress Level",
		"daily.confidence":        "Confidence in Material",
		"daily.main_stressors":    "Main Stressors",
		"daily.journal":           "Journal",
		"daily.save":              "Save Entry",
		"weekly.title":            "Weekly Check-in",
		"weekly.subtitle":         "Reflect on your week",
		"weekly.q_load":           "How was your study load this week?",
		"weekly.q_confidence":     "How confident did you feel?",
		"weekly.q_hobby":          "Did you have time for hobbies?",
		"weekly.q_sleep":          "How was your sleep quality?",
		"weekly.completed":        "Assessment Completed!",
		"analytics.top_stressors": "Top Stressors",
		"analytics.no_data":       "No data yet",
		"analytics.log_week":      "Log this week!",
		"profile.title":           "Profile",
		"profile.language":        "Language",
		"profile.dark_mode":       "Dark Mode",
		"profile.notifications":   "Notifications",
		"subjects.title":          "Subjects",
	},
	"id": {
		"greeting.morning":        "Selamat Pagi",
		"greeting.afternoon":      "Selamat Siang",
		"greeting.evening":        "Selamat Malam",
		"greeting.checkin":        "Mari periksa kondisimu",
		"dashboard.mood_title":    "Mood Hari Ini",
		"dashboard.no_data":       "Belum Ada Data",
		"dashboard.check_in":      "Isi Jurnal!",
		"dashboard.streak_title":  "Total Jurnal",
		"dashboard.streak_unit":   "kali check-in",
		"dashboard.streak_msg":    "Pertahankan! 🔥",
		"dashboard.study_plan":    "Rencana Belajar",
		"dashboard.recent_logs":   "Riwayat Terbaru",
		"dashboard.no_logs":       "Belum ada data.",
		"daily.new_entry":         "Entri Baru",
		"daily.stress_check":      "Cek Stress Akademik",
		"daily.current_stress":    "Tingkat Stress Saat Ini",
		"daily.confidence":        "Keyakinan Menguasai Materi",
		"daily.main_stressors":    "Penyebab Stress Utama",
		"daily.journal":           "Jurnal",
		"daily.save":              "Simpan Entri",
		"weekly.title":            "Evaluasi Mingguan",
		"weekly.subtitle":         "Refleksi minggu ini",
		"weekly.q_load":           "Bagaimana beban belajar minggu ini?",
		"weekly.q_confidence":     "Seberapa percaya diri kamu?",
		"weekly.q_hobby":          "Sempat melakukan hobi?",
		"weekly.q_sleep":          "Bagaimana kualitas tidurmu?",
		"weekly.completed":        "Evaluasi Selesai!",
		"analytics.top_stressors": "Sumber Stress Utama",
		"analytics.no_data":       "Belum ada data",
		"analytics.log_week":      "Isi jurnal minggu ini!",
		"profile.title":           "Profil",
		"profile.language":        "Bahasa",
		"profile.dark_mode":       "Mode Gelap",
		"profile.notifications":   "Notifikasi",
		"subjects.title":          "Mata Pelajaran",
	},
}
