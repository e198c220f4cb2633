package sqlinline

const QStatsSummary = `--sql a4929a77-f6d8-4ba2-9f12-c9aeebdfc091
select
  (select count(*) from contributors)          as contributor_count,
  (select count(*) from payments)              as payment_count,
  (select coalesce(sum(amount), 0) from payments) as total_amount,
  (select max(date) from payments)             as latest_payment;
`
