package report

// reportTemplate is the whole report document. Charts render client-side
// with Chart.js from a CDN; everything else is inlined so the file stands
// alone.
const reportTemplate = `<!DOCTYPE html>
<html lang="tr">
<head>
<meta charset="UTF-8">
<meta name="viewport" content="width=device-width, initial-scale=1.0">
<title>WhatsApp Analiz Raporu</title>
<script src="https://cdn.jsdelivr.net/npm/chart.js@4"></script>
<style>
  body { font-family: 'Segoe UI', Arial, sans-serif; margin: 0; background: #f0f2f5; color: #1c1e21; }
  .container { max-width: 1100px; margin: 0 auto; padding: 24px; }
  header { background: #075e54; color: #fff; padding: 28px 24px; }
  header h1 { margin: 0 0 6px; }
  header .sub { opacity: .85; font-size: 14px; }
  section { background: #fff; border-radius: 10px; padding: 20px 24px; margin: 20px 0; box-shadow: 0 1px 3px rgba(0,0,0,.12); }
  h2 { margin-top: 0; color: #075e54; border-bottom: 2px solid #25d366; padding-bottom: 8px; }
  .cards { display: grid; grid-template-columns: repeat(auto-fit, minmax(160px, 1fr)); gap: 14px; }
  .card { background: #e7f6ef; border-radius: 8px; padding: 14px; text-align: center; }
  .card .value { font-size: 26px; font-weight: 700; color: #075e54; }
  .card .label { font-size: 13px; color: #555; margin-top: 4px; }
  table { width: 100%; border-collapse: collapse; font-size: 14px; }
  th, td { padding: 8px 10px; text-align: left; border-bottom: 1px solid #e4e6eb; }
  th { background: #075e54; color: #fff; }
  tr:hover td { background: #f5f6f7; }
  .chart-box { max-width: 860px; margin: 0 auto; }
  .heatmap td { text-align: center; font-size: 11px; padding: 4px 2px; }
  .heatmap th { font-size: 11px; padding: 4px 2px; }
  .msg { border-radius: 8px; padding: 8px 12px; margin: 6px 0; max-width: 75%; font-size: 14px; }
  .msg .meta { font-size: 11px; color: #667; margin-top: 4px; }
  .msg.out { background: #dcf8c6; margin-left: auto; }
  .msg.in { background: #f1f0f0; }
  .emoji-row { font-size: 22px; }
  footer { text-align: center; color: #888; font-size: 12px; padding: 16px 0 32px; }
</style>
</head>
<body>
<header>
  <div class="container">
    <h1>📱 WhatsApp Analiz Raporu</h1>
    <div class="sub">Oluşturulma: {{ftime .GeneratedAt}}</div>
  </div>
</header>
<div class="container">

<section>
  <h2>Genel İstatistikler</h2>
  <div class="cards">
    <div class="card"><div class="value">{{.Stats.TotalMessages}}</div><div class="label">Toplam Mesaj</div></div>
    <div class="card"><div class="value">{{.Stats.TotalChats}}</div><div class="label">Toplam Sohbet</div></div>
    <div class="card"><div class="value">{{.Stats.TotalGroups}}</div><div class="label">Grup</div></div>
    <div class="card"><div class="value">{{.Stats.TotalPersonalChats}}</div><div class="label">Kişisel Sohbet</div></div>
    <div class="card"><div class="value">{{.Stats.TotalMedia}}</div><div class="label">Medya</div></div>
    <div class="card"><div class="value">{{.Stats.SentMessages}}</div><div class="label">Gönderilen</div></div>
    <div class="card"><div class="value">{{.Stats.ReceivedMessages}}</div><div class="label">Alınan</div></div>
    {{if .DeletedCount}}<div class="card"><div class="value">{{.DeletedCount}}</div><div class="label">Silinen Mesaj</div></div>{{end}}
  </div>
  {{if not .Stats.FirstMessage.IsZero}}
  <p>İlk mesaj <strong>{{ftime .Stats.FirstMessage}}</strong>, son mesaj <strong>{{ftime .Stats.LastMessage}}</strong>
  ({{.Stats.DateRangeDays}} gün). En yoğun gün <strong>{{.Stats.MostActiveDay}}</strong>
  ({{.Stats.MostActiveDayCount}} mesaj).</p>
  {{end}}
</section>

{{if .Distribution}}
<section>
  <h2>Mesaj Türü Dağılımı</h2>
  <div class="chart-box"><canvas id="typeChart"></canvas></div>
</section>
{{end}}

{{if .Monthly}}
<section>
  <h2>Aylık Mesaj Trendi</h2>
  <div class="chart-box"><canvas id="monthChart"></canvas></div>
</section>
{{end}}

<section>
  <h2>Saatlik ve Günlük Dağılım</h2>
  <div class="chart-box"><canvas id="hourChart"></canvas></div>
  <div class="chart-box" style="margin-top:24px"><canvas id="dayChart"></canvas></div>
</section>

{{if .Heatmap}}
<section>
  <h2>Aktivite Isı Haritası</h2>
  <table class="heatmap">
    <tr><th></th>{{range $h := .HourLabels}}<th>{{$h}}</th>{{end}}</tr>
    {{range $d, $row := .Heatmap}}
    <tr><th>{{index $.DayNames $d}}</th>
      {{range $row}}<td style="background: rgba(7,94,84,{{heat . $.HeatMax}})">{{if .}}{{.}}{{end}}</td>{{end}}
    </tr>
    {{end}}
  </table>
</section>
{{end}}

{{if .TopContacts}}
<section>
  <h2>En Çok Mesajlaşılan Kişiler</h2>
  <div class="chart-box"><canvas id="contactChart"></canvas></div>
  <table>
    <tr><th>#</th><th>Kişi</th><th>Toplam</th><th>Gönderilen</th><th>Alınan</th><th>Denge</th><th>Son Mesaj</th></tr>
    {{range $i, $c := .TopContacts}}
    <tr><td>{{inc $i}}</td><td>{{$c.ContactName}}</td><td>{{$c.TotalMessages}}</td>
        <td>{{$c.SentByMe}}</td><td>{{$c.Received}}</td><td>{{f2 $c.BalanceScore}}</td><td>{{ftime $c.LastMessage}}</td></tr>
    {{end}}
  </table>
</section>
{{end}}

{{if .Groups}}
<section>
  <h2>Grup İstatistikleri</h2>
  <table>
    <tr><th>Grup</th><th>Mesaj</th><th>İlk Mesaj</th><th>Son Mesaj</th></tr>
    {{range .Groups}}
    <tr><td>{{.GroupName}}</td><td>{{.TotalMessages}}</td><td>{{ftime .FirstMessage}}</td><td>{{ftime .LastMessage}}</td></tr>
    {{end}}
  </table>
</section>
{{end}}

{{if .MediaSenders}}
<section>
  <h2>Medya Analizi</h2>
  <div class="cards">
    <div class="card"><div class="value">{{.MediaStats.TotalImages}}</div><div class="label">Fotoğraf</div></div>
    <div class="card"><div class="value">{{.MediaStats.TotalVideos}}</div><div class="label">Video</div></div>
    <div class="card"><div class="value">{{.MediaStats.TotalAudio}}</div><div class="label">Ses</div></div>
    <div class="card"><div class="value">{{.MediaStats.TotalDocuments}}</div><div class="label">Belge</div></div>
    <div class="card"><div class="value">{{.MediaStats.TotalGIFs}}</div><div class="label">GIF</div></div>
    <div class="card"><div class="value">{{.MediaStats.TotalStickers}}</div><div class="label">Çıkartma</div></div>
  </div>
  <table style="margin-top:16px">
    <tr><th>Kişi</th><th>Toplam Medya</th><th>Fotoğraf</th><th>Ses</th><th>Video</th></tr>
    {{range .MediaSenders}}
    <tr><td>{{.ContactName}}</td><td>{{.TotalMedia}}</td><td>{{.Images}}</td><td>{{.Audio}}</td><td>{{.Videos}}</td></tr>
    {{end}}
  </table>
</section>
{{end}}

{{if .Words}}
<section>
  <h2>Kelime Analizi</h2>
  {{if .LengthStats}}
  <p>Ortalama mesaj uzunluğu <strong>{{f1 .LengthStats.AverageLength}}</strong> karakter
  (medyan {{f1 .LengthStats.MedianLength}}, en uzun {{.LengthStats.MaxLength}}, en kısa {{.LengthStats.MinLength}}).</p>
  {{end}}
  <table>
    <tr><th>#</th><th>Kelime</th><th>Frekans</th></tr>
    {{range $i, $w := .Words}}
    <tr><td>{{inc $i}}</td><td>{{$w.Word}}</td><td>{{$w.Count}}</td></tr>
    {{end}}
  </table>
</section>
{{end}}

{{if .Emojis}}
<section>
  <h2>Emoji Analizi</h2>
  <table>
    <tr><th>#</th><th>Emoji</th><th>Frekans</th></tr>
    {{range $i, $e := .Emojis}}
    <tr><td>{{inc $i}}</td><td class="emoji-row">{{$e.Emoji}}</td><td>{{$e.Count}}</td></tr>
    {{end}}
  </table>
</section>
{{end}}

{{if .ResponseTime}}
<section>
  <h2>Yanıt Süresi Analizi</h2>
  <div class="cards">
    <div class="card"><div class="value">{{f1 .ResponseTime.AverageMinutes}} dk</div><div class="label">Ortalama</div></div>
    <div class="card"><div class="value">{{f1 .ResponseTime.MedianMinutes}} dk</div><div class="label">Medyan</div></div>
    <div class="card"><div class="value">{{f1 .ResponseTime.MinMinutes}} dk</div><div class="label">En Hızlı</div></div>
    <div class="card"><div class="value">{{f1 .ResponseTime.MaxMinutes}} dk</div><div class="label">En Yavaş</div></div>
  </div>
</section>
{{end}}

{{if .Longest}}
<section>
  <h2>En Uzun Mesajlar</h2>
  <table>
    <tr><th>Uzunluk</th><th>Mesaj</th></tr>
    {{range .Longest}}<tr><td>{{.Length}}</td><td>{{.Text}}</td></tr>{{end}}
  </table>
</section>
{{end}}

{{if .Recent}}
<section>
  <h2>Son Mesajlar</h2>
  <table>
    <tr><th>Kişi</th><th>Yön</th><th>Zaman</th><th>Mesaj</th></tr>
    {{range .Recent}}
    <tr><td>{{name .ChatJID}}</td><td>{{direction .FromMe}}</td><td>{{ftime .Timestamp}}</td><td>{{.Text}}</td></tr>
    {{end}}
  </table>
</section>
{{end}}

{{if .First}}
<section>
  <h2>İlk Mesajlar</h2>
  <table>
    <tr><th>Kişi</th><th>Yön</th><th>Zaman</th><th>Mesaj</th></tr>
    {{range .First}}
    <tr><td>{{name .ChatJID}}</td><td>{{direction .FromMe}}</td><td>{{ftime .Timestamp}}</td><td>{{.Text}}</td></tr>
    {{end}}
  </table>
</section>
{{end}}

{{if .Samples}}
<section>
  <h2>Rastgele Mesaj Örnekleri</h2>
  <table>
    <tr><th>Kişi</th><th>Yön</th><th>Zaman</th><th>Mesaj</th></tr>
    {{range .Samples}}
    <tr><td>{{name .ChatJID}}</td><td>{{direction .FromMe}}</td><td>{{ftime .Timestamp}}</td><td>{{.Text}}</td></tr>
    {{end}}
  </table>
</section>
{{end}}

{{range .Conversations}}
{{if .Details}}
<section>
  <h2>Sohbet: {{.Details.ContactName}}</h2>
  <p>{{.Details.TotalMessages}} mesaj ({{.Details.SentByMe}} gönderilen, {{.Details.Received}} alınan),
  {{.Details.MediaCount}} medya.
  {{if ge .Details.MostActiveHour 0}}En aktif saat: {{.Details.MostActiveHour}}:00.{{end}}</p>
  {{range .Messages}}
  <div class="msg {{if .FromMe}}out{{else}}in{{end}}">
    {{if .HasText}}{{.Text}}{{else}}<em>medya</em>{{end}}
    <div class="meta">{{ftime .Timestamp}}</div>
  </div>
  {{end}}
</section>
{{end}}
{{end}}

</div>
<footer>Rapor kimliği: {{.RunID}}</footer>

<script>
const typeData = {{js .Distribution}};
const monthly = {{js .Monthly}};
const hourly = {{js .Hourly}};
const days = {{js .Days}};
const contacts = {{js .TopContacts}};
const green = '#075e54', light = '#25d366';

if (typeData && typeData.length) {
  new Chart(document.getElementById('typeChart'), {
    type: 'pie',
    data: {
      labels: typeData.map(d => d.Label),
      datasets: [{ data: typeData.map(d => d.Count) }]
    }
  });
}
if (monthly && monthly.length) {
  new Chart(document.getElementById('monthChart'), {
    type: 'line',
    data: {
      labels: monthly.map(d => d.Label),
      datasets: [{ label: 'Mesaj', data: monthly.map(d => d.Count), borderColor: green, fill: false }]
    }
  });
}
new Chart(document.getElementById('hourChart'), {
  type: 'bar',
  data: {
    labels: hourly.map((_, h) => h + ':00'),
    datasets: [{ label: 'Saatlik mesaj', data: hourly, backgroundColor: light }]
  }
});
new Chart(document.getElementById('dayChart'), {
  type: 'bar',
  data: {
    labels: days.map(d => d.Label),
    datasets: [{ label: 'Günlük mesaj', data: days.map(d => d.Count), backgroundColor: green }]
  }
});
if (contacts && contacts.length) {
  new Chart(document.getElementById('contactChart'), {
    type: 'bar',
    data: {
      labels: contacts.map(c => c.ContactName),
      datasets: [
        { label: 'Gönderilen', data: contacts.map(c => c.SentByMe), backgroundColor: green },
        { label: 'Alınan', data: contacts.map(c => c.Received), backgroundColor: light }
      ]
    },
    options: { indexAxis: 'y', scales: { x: { stacked: true }, y: { stacked: true } } }
  });
}
</script>
</body>
</html>
`
